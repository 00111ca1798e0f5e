package report

import (
	"context"
	"errors"
	"time"

	"go-workforce/internal/employee"
	reporterrors "go-workforce/internal/report/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	GetTimesheetsByWeek(ctx context.Context, weekEnding string) ([]TimesheetWithEmployee, error)
	GetOvertimeReport(ctx context.Context, date string) ([]TimesheetWithEmployee, error)
	GetLaborReport(ctx context.Context, date string) ([]LaborReportRow, error)
	GetTimesheetByID(ctx context.Context, id int64) (*TimesheetDetail, error)
	GetOpenTimesheets(ctx context.Context) ([]TimesheetWithEmployee, error)

	GetExpenseReport(ctx context.Context, date string) ([]ExpenseReportRow, error)
	GetExpensesByMonthStart(ctx context.Context, dateStart string) ([]ExpenseWithEmployee, error)
	GetExpenseByID(ctx context.Context, id int64) ([]ExpenseDetail, error)
	GetOpenExpenses(ctx context.Context) ([]ExpenseWithEmployee, error)

	GetAllEmployees(ctx context.Context) ([]employee.Employee, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetTimesheetsByWeek(ctx context.Context, weekEnding string) ([]TimesheetWithEmployee, error) {
	week, err := parseDateOnly(weekEnding)
	if err != nil {
		return nil, reporterrors.ErrInvalidDate
	}

	sheets, err := s.repo.FindTimesheetsByWeeks(ctx, []time.Time{week})
	if err != nil {
		s.logger.Error("fetch timesheets by week failed", zap.String("week_ending", weekEnding), zap.Error(err))
		return nil, err
	}
	return sheets, nil
}

// GetOvertimeReport covers the pay period: the given week ending plus the
// week before it.
func (s *service) GetOvertimeReport(ctx context.Context, date string) ([]TimesheetWithEmployee, error) {
	weeks, err := biweeklyRange(date)
	if err != nil {
		return nil, reporterrors.ErrInvalidDate
	}

	sheets, err := s.repo.FindTimesheetsByWeeks(ctx, weeks)
	if err != nil {
		s.logger.Error("fetch overtime report failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return sheets, nil
}

// GetLaborReport returns the biweekly hour breakdown per sheet, with each
// entry flattened against the project, phase and cost code it books to.
// Dangling references read "N/A".
func (s *service) GetLaborReport(ctx context.Context, date string) ([]LaborReportRow, error) {
	weeks, err := biweeklyRange(date)
	if err != nil {
		return nil, reporterrors.ErrInvalidDate
	}

	sheets, err := s.repo.FindTimesheetsByWeeks(ctx, weeks)
	if err != nil {
		s.logger.Error("fetch labor report sheets failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	ids := make([]int64, 0, len(sheets))
	for _, sheet := range sheets {
		ids = append(ids, sheet.ID)
	}

	entryRows, err := s.repo.FindLaborEntries(ctx, ids)
	if err != nil {
		s.logger.Error("fetch labor report entries failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	entriesBySheet := make(map[int64][]LaborReportEntry, len(sheets))
	for _, row := range entryRows {
		entriesBySheet[row.TimesheetID] = append(entriesBySheet[row.TimesheetID], LaborReportEntry{
			TimesheetEntry:      row.TimesheetEntry,
			Project:             orNA(row.ProjectNumber),
			ProjectDescription:  orNA(row.ProjectDescription),
			Phase:               orNA(row.PhaseNumber),
			PhaseDescription:    orNA(row.PhaseDescription),
			CostCode:            orNA(row.CostCodeNumber),
			CostCodeDescription: orNA(row.CostCodeDescription),
		})
	}

	result := make([]LaborReportRow, 0, len(sheets))
	for _, sheet := range sheets {
		entries := entriesBySheet[sheet.ID]
		if entries == nil {
			entries = []LaborReportEntry{}
		}
		result = append(result, LaborReportRow{
			Timesheet: LaborReportSheet{
				Timesheet:         sheet.Timesheet,
				EmployeeFirstName: orNA(sheet.FirstName),
				EmployeeLastName:  orNA(sheet.LastName),
			},
			Entries: entries,
		})
	}
	return result, nil
}

func (s *service) GetTimesheetByID(ctx context.Context, id int64) (*TimesheetDetail, error) {
	detail, err := s.repo.FindTimesheetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reporterrors.ErrTimesheetNotFound
		}
		s.logger.Error("fetch timesheet detail failed", zap.Int64("timesheet_id", id), zap.Error(err))
		return nil, err
	}
	return detail, nil
}

// GetOpenTimesheets lists sheets signed by the employee but not yet approved.
func (s *service) GetOpenTimesheets(ctx context.Context) ([]TimesheetWithEmployee, error) {
	sheets, err := s.repo.FindOpenTimesheets(ctx)
	if err != nil {
		s.logger.Error("fetch open timesheets failed", zap.Error(err))
		return nil, err
	}
	return sheets, nil
}

// GetExpenseReport returns the monthly expense breakdown: one row per sheet
// with the employee and the flattened entries attached.
func (s *service) GetExpenseReport(ctx context.Context, date string) ([]ExpenseReportRow, error) {
	dateStart, err := parseDateOnly(date)
	if err != nil {
		return nil, reporterrors.ErrInvalidDate
	}

	expenses, err := s.repo.FindExpensesByDateStart(ctx, dateStart)
	if err != nil {
		s.logger.Error("fetch expense report sheets failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	ids := make([]int64, 0, len(expenses))
	for _, sheet := range expenses {
		ids = append(ids, sheet.ID)
	}

	entryRows, err := s.repo.FindExpenseReportEntries(ctx, ids)
	if err != nil {
		s.logger.Error("fetch expense report entries failed", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	entriesBySheet := make(map[int64][]ExpenseReportEntry, len(expenses))
	for _, row := range entryRows {
		entriesBySheet[row.ExpenseID] = append(entriesBySheet[row.ExpenseID], row)
	}

	result := make([]ExpenseReportRow, 0, len(expenses))
	for _, sheet := range expenses {
		entries := entriesBySheet[sheet.ID]
		if entries == nil {
			entries = []ExpenseReportEntry{}
		}
		result = append(result, ExpenseReportRow{
			Expense:  sheet.Expense,
			Employee: reportEmployee(sheet),
			Entries:  entries,
		})
	}
	return result, nil
}

func (s *service) GetExpensesByMonthStart(ctx context.Context, dateStart string) ([]ExpenseWithEmployee, error) {
	date, err := parseDateOnly(dateStart)
	if err != nil {
		return nil, reporterrors.ErrInvalidDate
	}

	expenses, err := s.repo.FindExpensesByDateStart(ctx, date)
	if err != nil {
		s.logger.Error("fetch expenses by month failed", zap.String("date_start", dateStart), zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

func (s *service) GetExpenseByID(ctx context.Context, id int64) ([]ExpenseDetail, error) {
	details, err := s.repo.FindExpenseDetail(ctx, id)
	if err != nil {
		s.logger.Error("fetch expense detail failed", zap.Int64("expense_id", id), zap.Error(err))
		return nil, err
	}
	return details, nil
}

func (s *service) GetOpenExpenses(ctx context.Context) ([]ExpenseWithEmployee, error) {
	expenses, err := s.repo.FindOpenExpenses(ctx)
	if err != nil {
		s.logger.Error("fetch open expenses failed", zap.Error(err))
		return nil, err
	}
	return expenses, nil
}

func (s *service) GetAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.repo.FindAllEmployees(ctx)
	if err != nil {
		s.logger.Error("fetch all employees failed", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

func reportEmployee(sheet ExpenseWithEmployee) *ReportEmployee {
	if sheet.FirstName == nil && sheet.LastName == nil && sheet.EmployeeNumber == nil {
		return nil
	}
	return &ReportEmployee{
		ID:             sheet.EmployeeID,
		EmployeeNumber: deref(sheet.EmployeeNumber),
		FirstName:      deref(sheet.FirstName),
		LastName:       deref(sheet.LastName),
	}
}

// biweeklyRange resolves a week ending date to itself plus the week before.
func biweeklyRange(date string) ([]time.Time, error) {
	week, err := parseDateOnly(date)
	if err != nil {
		return nil, err
	}
	return []time.Time{week, week.AddDate(0, 0, -7)}, nil
}

func orNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func parseDateOnly(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
