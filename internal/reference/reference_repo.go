package reference

import (
	"context"

	"go-workforce/internal/project"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reference_repo.go -destination=mock/reference_repo_mock.go -package=mock
type Repository interface {
	FindActiveProjects(ctx context.Context) ([]project.Project, error)
	FindAllPhases(ctx context.Context) ([]Phase, error)
	FindAllCostCodes(ctx context.Context) ([]CostCode, error)
	FindAllMisc(ctx context.Context) ([]Miscellaneous, error)
	FindAllCustomers(ctx context.Context) ([]project.Customer, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindActiveProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("number ASC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindAllPhases(ctx context.Context) ([]Phase, error) {
	var phases []Phase
	err := r.db.WithContext(ctx).Order("number ASC").Find(&phases).Error
	return phases, err
}

func (r *repository) FindAllCostCodes(ctx context.Context) ([]CostCode, error) {
	var codes []CostCode
	err := r.db.WithContext(ctx).Order("cost_code ASC").Find(&codes).Error
	return codes, err
}

func (r *repository) FindAllMisc(ctx context.Context) ([]Miscellaneous, error) {
	var misc []Miscellaneous
	err := r.db.WithContext(ctx).Order("number ASC").Find(&misc).Error
	return misc, err
}

func (r *repository) FindAllCustomers(ctx context.Context) ([]project.Customer, error) {
	var customers []project.Customer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error
	return customers, err
}
