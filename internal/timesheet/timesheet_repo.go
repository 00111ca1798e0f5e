package timesheet

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, sheet *Timesheet) error
	Update(ctx context.Context, sheet *Timesheet) error
	FindByID(ctx context.Context, id int64) (*Timesheet, error)
	FindByEmployeeAndWeek(ctx context.Context, employeeID int64, weekEnding time.Time) (*Timesheet, error)
	FindAllByEmployee(ctx context.Context, employeeID int64) ([]Timesheet, error)
	Delete(ctx context.Context, id int64) (int64, error)

	CreateEntry(ctx context.Context, entry *TimesheetEntry) error
	UpdateEntry(ctx context.Context, entry *TimesheetEntry) error
	FindEntryByID(ctx context.Context, id int64) (*TimesheetEntry, error)
	FindEntriesByTimesheetID(ctx context.Context, timesheetID int64) ([]TimesheetEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
	DeleteEntriesByTimesheetID(ctx context.Context, timesheetID int64) error
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

func (r *repository) Create(ctx context.Context, sheet *Timesheet) error {
	return r.db.WithContext(ctx).Create(sheet).Error
}

func (r *repository) Update(ctx context.Context, sheet *Timesheet) error {
	return r.db.WithContext(ctx).Save(sheet).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Timesheet, error) {
	var sheet Timesheet
	err := r.db.WithContext(ctx).First(&sheet, "id = ?", id).Error
	return &sheet, err
}

func (r *repository) FindByEmployeeAndWeek(ctx context.Context, employeeID int64, weekEnding time.Time) (*Timesheet, error) {
	var sheet Timesheet
	err := r.db.WithContext(ctx).
		First(&sheet, "employee_id = ? AND week_ending = ?", employeeID, weekEnding).Error
	return &sheet, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID int64) ([]Timesheet, error) {
	var sheets []Timesheet
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("week_ending DESC").
		Find(&sheets).Error
	return sheets, err
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Timesheet{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *repository) CreateEntry(ctx context.Context, entry *TimesheetEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) UpdateEntry(ctx context.Context, entry *TimesheetEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *repository) FindEntryByID(ctx context.Context, id int64) (*TimesheetEntry, error) {
	var entry TimesheetEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *repository) FindEntriesByTimesheetID(ctx context.Context, timesheetID int64) ([]TimesheetEntry, error) {
	var entries []TimesheetEntry
	err := r.db.WithContext(ctx).
		Where("timesheet_id = ?", timesheetID).
		Order("row_index ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteEntry(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&TimesheetEntry{}, "id = ?", id).Error
}

func (r *repository) DeleteEntriesByTimesheetID(ctx context.Context, timesheetID int64) error {
	return r.db.WithContext(ctx).Delete(&TimesheetEntry{}, "timesheet_id = ?", timesheetID).Error
}
