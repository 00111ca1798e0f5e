package expense

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, sheet *Expense) error
	Update(ctx context.Context, sheet *Expense) error
	FindByID(ctx context.Context, id int64) (*Expense, error)
	FindByEmployeeAndStart(ctx context.Context, employeeID int64, dateStart time.Time) (*Expense, error)
	FindAllByEmployee(ctx context.Context, employeeID int64) ([]Expense, error)
	Delete(ctx context.Context, id int64) (int64, error)

	CreateEntry(ctx context.Context, entry *ExpenseEntry) error
	UpdateEntry(ctx context.Context, entry *ExpenseEntry) error
	FindEntryByID(ctx context.Context, id int64) (*ExpenseEntry, error)
	FindEntriesByExpenseID(ctx context.Context, expenseID int64) ([]ExpenseEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
	DeleteEntriesByExpenseID(ctx context.Context, expenseID int64) error

	CreateFile(ctx context.Context, file *ExpenseFile) error
	FindFileByID(ctx context.Context, id int64) (*ExpenseFile, error)
	DeleteFile(ctx context.Context, id int64) error
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

func (r *repository) Create(ctx context.Context, sheet *Expense) error {
	return r.db.WithContext(ctx).Create(sheet).Error
}

func (r *repository) Update(ctx context.Context, sheet *Expense) error {
	return r.db.WithContext(ctx).Save(sheet).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Expense, error) {
	var sheet Expense
	err := r.db.WithContext(ctx).
		Preload("Files").
		First(&sheet, "id = ?", id).Error
	return &sheet, err
}

func (r *repository) FindByEmployeeAndStart(ctx context.Context, employeeID int64, dateStart time.Time) (*Expense, error) {
	var sheet Expense
	err := r.db.WithContext(ctx).
		First(&sheet, "employee_id = ? AND date_start = ?", employeeID, dateStart).Error
	return &sheet, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID int64) ([]Expense, error) {
	var sheets []Expense
	err := r.db.WithContext(ctx).
		Preload("Files").
		Where("employee_id = ?", employeeID).
		Order("date_start DESC").
		Find(&sheets).Error
	return sheets, err
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Expense{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateEntry(ctx context.Context, entry *ExpenseEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) UpdateEntry(ctx context.Context, entry *ExpenseEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *repository) FindEntryByID(ctx context.Context, id int64) (*ExpenseEntry, error) {
	var entry ExpenseEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) FindEntriesByExpenseID(ctx context.Context, expenseID int64) ([]ExpenseEntry, error) {
	var entries []ExpenseEntry
	err := r.db.WithContext(ctx).
		Where("expense_id = ?", expenseID).
		Order("day ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteEntry(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ExpenseEntry{}, "id = ?", id).Error
}

func (r *repository) DeleteEntriesByExpenseID(ctx context.Context, expenseID int64) error {
	return r.db.WithContext(ctx).Delete(&ExpenseEntry{}, "expense_id = ?", expenseID).Error
}

func (r *repository) CreateFile(ctx context.Context, file *ExpenseFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *repository) FindFileByID(ctx context.Context, id int64) (*ExpenseFile, error) {
	var file ExpenseFile
	err := r.db.WithContext(ctx).First(&file, "id = ?", id).Error
	return &file, err
}

func (r *repository) DeleteFile(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ExpenseFile{}, "id = ?", id).Error
}
