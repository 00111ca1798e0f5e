package project

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, id int64, p *Project) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	FindAllWithCustomer(ctx context.Context) ([]ProjectWithCustomer, error)

	CreateCustomer(ctx context.Context, c *Customer) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Update(ctx context.Context, id int64, p *Project) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"number":      p.Number,
			"description": p.Description,
			"short_name":  p.ShortName,
			"comment":     p.Comment,
			"overtime":    p.Overtime,
			"sga_flag":    p.SgaFlag,
			"customer_id": p.CustomerID,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Project{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) FindAllWithCustomer(ctx context.Context) ([]ProjectWithCustomer, error) {
	var projects []ProjectWithCustomer
	err := r.db.WithContext(ctx).
		Table("project").
		Select("project.*", "customer.name AS customer_name", "customer.contact AS customer_contact").
		Joins("LEFT JOIN customer ON customer.id = project.customer_id").
		Order("project.number ASC").
		Scan(&projects).Error
	return projects, err
}

func (r *repository) CreateCustomer(ctx context.Context, c *Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}
