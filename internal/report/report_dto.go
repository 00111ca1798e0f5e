package report

import (
	"go-workforce/internal/expense"
	"go-workforce/internal/timesheet"
)

// TimesheetWithEmployee is a weekly sheet flattened with the owning
// employee's name and manager. Pointer fields stay null when the employee
// row is gone.
type TimesheetWithEmployee struct {
	timesheet.Timesheet
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ManagerID *int64  `json:"manager_id"`
}

type ExpenseWithEmployee struct {
	expense.Expense
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	EmployeeNumber *string `json:"employee_number"`
	ManagerID      *int64  `json:"manager_id"`
}

// LaborReportRow pairs one sheet with its entries, each entry flattened with
// the project, phase and cost code it books against.
type LaborReportRow struct {
	Timesheet LaborReportSheet   `json:"timesheet"`
	Entries   []LaborReportEntry `json:"entries"`
}

type LaborReportSheet struct {
	timesheet.Timesheet
	EmployeeFirstName string `json:"employee_first_name"`
	EmployeeLastName  string `json:"employee_last_name"`
}

type LaborReportEntry struct {
	timesheet.TimesheetEntry
	Project             string `json:"project"`
	ProjectDescription  string `json:"project_description"`
	Phase               string `json:"phase"`
	PhaseDescription    string `json:"phase_description"`
	CostCode            string `json:"cost_code"`
	CostCodeDescription string `json:"cost_code_description"`
}

// laborEntryRow is the raw scan shape before "N/A" fallbacks are applied.
type laborEntryRow struct {
	timesheet.TimesheetEntry
	ProjectNumber       *string `json:"-"`
	ProjectDescription  *string `json:"-"`
	PhaseNumber         *string `json:"-"`
	PhaseDescription    *string `json:"-"`
	CostCodeNumber      *string `json:"-" gorm:"column:cost_code_number"`
	CostCodeDescription *string `json:"-"`
}

type ExpenseReportRow struct {
	Expense  expense.Expense      `json:"expense"`
	Employee *ReportEmployee      `json:"employee"`
	Entries  []ExpenseReportEntry `json:"expenseEntries"`
}

type ReportEmployee struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
}

type ExpenseReportEntry struct {
	expense.ExpenseEntry
	ProjectNumber            *string `json:"project_number"`
	MiscellaneousDescription *string `json:"miscellaneous_description"`
}

type ExpenseDetail struct {
	expense.Expense
	Entries []expense.ExpenseEntry `json:"expense_entries"`
}

type TimesheetDetail struct {
	Timesheet timesheet.Timesheet        `json:"timesheet"`
	Entries   []timesheet.TimesheetEntry `json:"entries"`
}
