package auth

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, auth *Authentication) error
	FindByUserID(ctx context.Context, userID int64) (*Authentication, error)
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
	RecordLogin(ctx context.Context, userID int64) error
	RecordFailedAttempt(ctx context.Context, userID int64) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, auth *Authentication) error {
	return r.db.WithContext(ctx).Create(auth).Error
}

func (r *repository) FindByUserID(ctx context.Context, userID int64) (*Authentication, error) {
	var auth Authentication
	err := r.db.WithContext(ctx).First(&auth, "user_id = ?", userID).Error
	return &auth, err
}

func (r *repository) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	return r.db.WithContext(ctx).
		Model(&Authentication{}).
		Where("user_id = ?", userID).
		Update("password_hash", hash).Error
}

func (r *repository) RecordLogin(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&Authentication{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"last_login":      time.Now(),
			"failed_attempts": 0,
		}).Error
}

func (r *repository) RecordFailedAttempt(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&Authentication{}).
		Where("user_id = ?", userID).
		Update("failed_attempts", gorm.Expr("failed_attempts + 1")).Error
}
