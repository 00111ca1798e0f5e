package events

import "time"

const SheetLifecycleTopic = "wf.sheet.lifecycle.v1"

const (
	SheetTypeTimesheet = "timesheet"
	SheetTypeExpense   = "expense"

	EventTimesheetSaved     = "timesheet.saved"
	EventTimesheetProcessed = "timesheet.processed"
	EventExpenseSaved       = "expense.saved"
	EventExpensePaid        = "expense.paid"
)

type SheetLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	SheetType  string    `json:"sheet_type"`
	SheetID    int64     `json:"sheet_id"`
	EmployeeID int64     `json:"employee_id"`
	Period     string    `json:"period"`
	OccurredAt time.Time `json:"occurred_at"`
}
