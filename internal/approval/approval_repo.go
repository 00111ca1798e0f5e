package approval

import (
	"context"
	"database/sql"

	"go-workforce/internal/expense"
	"go-workforce/internal/timesheet"

	"gorm.io/gorm"
)

//go:generate mockgen -source=approval_repo.go -destination=mock/approval_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindTimesheet(ctx context.Context, id int64) (*timesheet.Timesheet, error)
	UpdateTimesheetStatus(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)

	FindExpense(ctx context.Context, id int64) (*expense.Expense, error)
	UpdateExpenseStatus(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
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

func (r *repository) FindTimesheet(ctx context.Context, id int64) (*timesheet.Timesheet, error) {
	var sheet timesheet.Timesheet
	err := r.db.WithContext(ctx).First(&sheet, "id = ?", id).Error
	return &sheet, err
}

func (r *repository) UpdateTimesheetStatus(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&timesheet.Timesheet{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *repository) FindExpense(ctx context.Context, id int64) (*expense.Expense, error) {
	var sheet expense.Expense
	err := r.db.WithContext(ctx).First(&sheet, "id = ?", id).Error
	return &sheet, err
}

func (r *repository) UpdateExpenseStatus(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&expense.Expense{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}
