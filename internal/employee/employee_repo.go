package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByUserName(ctx context.Context, userName string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAllNames(ctx context.Context) ([]EmployeeName, error)
	FindRoleByID(ctx context.Context, id int64) (*Role, error)
	Count(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByUserName(ctx context.Context, userName string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		First(&empl, "user_name = ?", userName).Error
	return &empl, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "email = ?", email).Error
	return &empl, err
}

func (r *repository) FindAllNames(ctx context.Context) ([]EmployeeName, error) {
	var names []EmployeeName
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id", "first_name", "last_name").
		Order("last_name ASC, first_name ASC").
		Find(&names).Error
	return names, err
}

func (r *repository) FindRoleByID(ctx context.Context, id int64) (*Role, error) {
	var role Role
	err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error
	return &role, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}
