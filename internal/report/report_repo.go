package report

import (
	"context"
	"time"

	"go-workforce/internal/employee"
	"go-workforce/internal/expense"
	"go-workforce/internal/timesheet"

	"gorm.io/gorm"
)

type Repository interface {
	FindTimesheetsByWeeks(ctx context.Context, weeks []time.Time) ([]TimesheetWithEmployee, error)
	FindOpenTimesheets(ctx context.Context) ([]TimesheetWithEmployee, error)
	FindTimesheetDetail(ctx context.Context, id int64) (*TimesheetDetail, error)
	FindLaborEntries(ctx context.Context, timesheetIDs []int64) ([]laborEntryRow, error)

	FindExpensesByDateStart(ctx context.Context, dateStart time.Time) ([]ExpenseWithEmployee, error)
	FindOpenExpenses(ctx context.Context) ([]ExpenseWithEmployee, error)
	FindExpenseReportEntries(ctx context.Context, expenseIDs []int64) ([]ExpenseReportEntry, error)
	FindExpenseDetail(ctx context.Context, id int64) ([]ExpenseDetail, error)

	FindAllEmployees(ctx context.Context) ([]employee.Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindTimesheetsByWeeks(ctx context.Context, weeks []time.Time) ([]TimesheetWithEmployee, error) {
	var sheets []TimesheetWithEmployee
	err := r.db.WithContext(ctx).
		Table("timesheet").
		Select("timesheet.*", "employee.first_name", "employee.last_name", "employee.manager_id").
		Joins("LEFT JOIN employee ON employee.id = timesheet.employee_id").
		Where("timesheet.week_ending IN ?", weeks).
		Order("timesheet.employee_id ASC, timesheet.week_ending ASC").
		Scan(&sheets).Error
	return sheets, err
}

func (r *repository) FindOpenTimesheets(ctx context.Context) ([]TimesheetWithEmployee, error) {
	var sheets []TimesheetWithEmployee
	err := r.db.WithContext(ctx).
		Table("timesheet").
		Select("timesheet.*", "employee.first_name", "employee.last_name", "employee.manager_id").
		Joins("LEFT JOIN employee ON employee.id = timesheet.employee_id").
		Where("timesheet.signed = ? AND timesheet.approved = ?", true, false).
		Order("timesheet.week_ending ASC").
		Scan(&sheets).Error
	return sheets, err
}

func (r *repository) FindTimesheetDetail(ctx context.Context, id int64) (*TimesheetDetail, error) {
	var sheet timesheet.Timesheet
	if err := r.db.WithContext(ctx).First(&sheet, "id = ?", id).Error; err != nil {
		return nil, err
	}

	var entries []timesheet.TimesheetEntry
	err := r.db.WithContext(ctx).
		Where("timesheet_id = ?", id).
		Order("row_index ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return &TimesheetDetail{Timesheet: sheet, Entries: entries}, nil
}

func (r *repository) FindLaborEntries(ctx context.Context, timesheetIDs []int64) ([]laborEntryRow, error) {
	if len(timesheetIDs) == 0 {
		return nil, nil
	}

	var rows []laborEntryRow
	err := r.db.WithContext(ctx).
		Table("timesheet_entry").
		Select(
			"timesheet_entry.*",
			"project.number AS project_number",
			"project.description AS project_description",
			"phase.number AS phase_number",
			"phase.description AS phase_description",
			"cost_code.cost_code AS cost_code_number",
			"cost_code.description AS cost_code_description",
		).
		Joins("LEFT JOIN project ON project.id = timesheet_entry.project_id").
		Joins("LEFT JOIN phase ON phase.id = timesheet_entry.phase_id").
		Joins("LEFT JOIN cost_code ON cost_code.id = timesheet_entry.cost_code_id").
		Where("timesheet_entry.timesheet_id IN ?", timesheetIDs).
		Order("timesheet_entry.timesheet_id ASC, timesheet_entry.row_index ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindExpensesByDateStart(ctx context.Context, dateStart time.Time) ([]ExpenseWithEmployee, error) {
	var expenses []ExpenseWithEmployee
	err := r.db.WithContext(ctx).
		Table("expense").
		Select("expense.*", "employee.first_name", "employee.last_name", "employee.employee_number", "employee.manager_id").
		Joins("LEFT JOIN employee ON employee.id = expense.employee_id").
		Where("expense.date_start = ?", dateStart).
		Order("expense.employee_id ASC").
		Scan(&expenses).Error
	return expenses, err
}

func (r *repository) FindOpenExpenses(ctx context.Context) ([]ExpenseWithEmployee, error) {
	var expenses []ExpenseWithEmployee
	err := r.db.WithContext(ctx).
		Table("expense").
		Select("expense.*", "employee.first_name", "employee.last_name", "employee.employee_number", "employee.manager_id").
		Joins("LEFT JOIN employee ON employee.id = expense.employee_id").
		Where("expense.signed = ? AND expense.approved = ?", true, false).
		Order("expense.date_start ASC").
		Scan(&expenses).Error
	return expenses, err
}

func (r *repository) FindExpenseReportEntries(ctx context.Context, expenseIDs []int64) ([]ExpenseReportEntry, error) {
	if len(expenseIDs) == 0 {
		return nil, nil
	}

	var entries []ExpenseReportEntry
	err := r.db.WithContext(ctx).
		Table("expense_entry").
		Select(
			"expense_entry.*",
			"project.number AS project_number",
			"miscellaneous.description AS miscellaneous_description",
		).
		Joins("LEFT JOIN project ON project.id = expense_entry.project_id").
		Joins("LEFT JOIN miscellaneous ON miscellaneous.id = expense_entry.miscellaneous_description_id").
		Where("expense_entry.expense_id IN ?", expenseIDs).
		Order("expense_entry.expense_id ASC, expense_entry.day ASC, expense_entry.id ASC").
		Scan(&entries).Error
	return entries, err
}

func (r *repository) FindExpenseDetail(ctx context.Context, id int64) ([]ExpenseDetail, error) {
	var sheets []expense.Expense
	err := r.db.WithContext(ctx).
		Preload("Files").
		Where("id = ?", id).
		Find(&sheets).Error
	if err != nil {
		return nil, err
	}

	details := make([]ExpenseDetail, 0, len(sheets))
	for _, sheet := range sheets {
		var entries []expense.ExpenseEntry
		err := r.db.WithContext(ctx).
			Where("expense_id = ?", sheet.ID).
			Order("day ASC, id ASC").
			Find(&entries).Error
		if err != nil {
			return nil, err
		}
		details = append(details, ExpenseDetail{Expense: sheet, Entries: entries})
	}
	return details, nil
}

func (r *repository) FindAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	return employees, err
}
