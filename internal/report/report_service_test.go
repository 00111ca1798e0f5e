package report

import (
	"context"
	"testing"
	"time"

	"go-workforce/internal/employee"
	"go-workforce/internal/expense"
	reporterrors "go-workforce/internal/report/errors"
	"go-workforce/internal/timesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	sheets       []TimesheetWithEmployee
	laborEntries []laborEntryRow
	expenses     []ExpenseWithEmployee
	reportRows   []ExpenseReportEntry

	queriedWeeks []time.Time
}

func (f *fakeRepo) FindTimesheetsByWeeks(_ context.Context, weeks []time.Time) ([]TimesheetWithEmployee, error) {
	f.queriedWeeks = weeks
	return f.sheets, nil
}

func (f *fakeRepo) FindOpenTimesheets(_ context.Context) ([]TimesheetWithEmployee, error) {
	return f.sheets, nil
}

func (f *fakeRepo) FindTimesheetDetail(_ context.Context, _ int64) (*TimesheetDetail, error) {
	return &TimesheetDetail{}, nil
}

func (f *fakeRepo) FindLaborEntries(_ context.Context, _ []int64) ([]laborEntryRow, error) {
	return f.laborEntries, nil
}

func (f *fakeRepo) FindExpensesByDateStart(_ context.Context, _ time.Time) ([]ExpenseWithEmployee, error) {
	return f.expenses, nil
}

func (f *fakeRepo) FindOpenExpenses(_ context.Context) ([]ExpenseWithEmployee, error) {
	return f.expenses, nil
}

func (f *fakeRepo) FindExpenseReportEntries(_ context.Context, _ []int64) ([]ExpenseReportEntry, error) {
	return f.reportRows, nil
}

func (f *fakeRepo) FindExpenseDetail(_ context.Context, _ int64) ([]ExpenseDetail, error) {
	return nil, nil
}

func (f *fakeRepo) FindAllEmployees(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func strPtr(v string) *string { return &v }

func TestGetOvertimeReport_CoversBothWeeks(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.GetOvertimeReport(context.Background(), "2025-01-12")
	require.NoError(t, err)

	require.Len(t, repo.queriedWeeks, 2)
	assert.Equal(t, "2025-01-12", repo.queriedWeeks[0].Format("2006-01-02"))
	assert.Equal(t, "2025-01-05", repo.queriedWeeks[1].Format("2006-01-02"))
}

func TestGetOvertimeReport_InvalidDate(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetOvertimeReport(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidDate)
}

func TestGetLaborReport_GroupsEntriesAndFallsBack(t *testing.T) {
	repo := &fakeRepo{
		sheets: []TimesheetWithEmployee{
			{Timesheet: timesheet.Timesheet{ID: 1}, FirstName: strPtr("Ada"), LastName: strPtr("Byron")},
			{Timesheet: timesheet.Timesheet{ID: 2}},
		},
		laborEntries: []laborEntryRow{
			{
				TimesheetEntry:     timesheet.TimesheetEntry{ID: 10, TimesheetID: 1},
				ProjectNumber:      strPtr("24-101"),
				ProjectDescription: strPtr("Warehouse retrofit"),
			},
		},
	}
	svc := NewService(repo)

	rows, err := svc.GetLaborReport(context.Background(), "2025-01-12")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Ada", rows[0].Timesheet.EmployeeFirstName)
	require.Len(t, rows[0].Entries, 1)
	assert.Equal(t, "24-101", rows[0].Entries[0].Project)
	assert.Equal(t, "N/A", rows[0].Entries[0].Phase)
	assert.Equal(t, "N/A", rows[0].Entries[0].CostCode)

	assert.Equal(t, "N/A", rows[1].Timesheet.EmployeeFirstName)
	assert.Empty(t, rows[1].Entries)
	assert.NotNil(t, rows[1].Entries)
}

func TestGetExpenseReport_AttachesEmployeeAndEntries(t *testing.T) {
	repo := &fakeRepo{
		expenses: []ExpenseWithEmployee{
			{
				Expense:        expense.Expense{ID: 1, EmployeeID: 5},
				FirstName:      strPtr("Ada"),
				LastName:       strPtr("Byron"),
				EmployeeNumber: strPtr("E-005"),
			},
			{Expense: expense.Expense{ID: 2, EmployeeID: 6}},
		},
		reportRows: []ExpenseReportEntry{
			{
				ExpenseEntry:  expense.ExpenseEntry{ID: 20, ExpenseID: 1},
				ProjectNumber: strPtr("24-101"),
			},
		},
	}
	svc := NewService(repo)

	rows, err := svc.GetExpenseReport(context.Background(), "2025-08-01")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Employee)
	assert.Equal(t, "E-005", rows[0].Employee.EmployeeNumber)
	require.Len(t, rows[0].Entries, 1)
	assert.Equal(t, "24-101", *rows[0].Entries[0].ProjectNumber)

	assert.Nil(t, rows[1].Employee)
	assert.Empty(t, rows[1].Entries)
}

func TestGetTimesheetsByWeek_InvalidDate(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetTimesheetsByWeek(context.Background(), "last-sunday")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidDate)
}
