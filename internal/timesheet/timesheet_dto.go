package timesheet

import "go-workforce/internal/shared/numeric"

// SaveTimesheetRequest carries the weekly sheet header plus its entry rows.
// Numeric fields tolerate strings and nulls from the client; they coerce to 0
// before any meaningful-fill decision is made.
type SaveTimesheetRequest struct {
	TimesheetData      TimesheetData        `json:"timesheetData" binding:"required"`
	TimesheetEntryData []TimesheetEntryData `json:"timesheetEntryData"`
}

type TimesheetData struct {
	ID            numeric.Int   `json:"id"`
	EmployeeID    numeric.Int   `json:"employee_id"`
	WeekEnding    string        `json:"week_ending"`
	TotalRegHours numeric.Float `json:"total_reg_hours"`
	TotalOvertime numeric.Float `json:"total_overtime"`
	Approved      bool          `json:"approved"`
	Signed        bool          `json:"signed"`
	Processed     bool          `json:"processed"`
	ApprovedBy    string        `json:"approved_by"`
	ProcessedBy   string        `json:"processed_by"`
	SubmittedBy   string        `json:"submitted_by"`
	Message       string        `json:"message"`
}

type TimesheetEntryData struct {
	ID          numeric.Int   `json:"id"`
	ProjectID   numeric.Int   `json:"project_id"`
	PhaseID     numeric.Int   `json:"phase_id"`
	CostCodeID  numeric.Int   `json:"cost_code_id"`
	RowIndex    numeric.Int   `json:"row_index"`
	Description string        `json:"description"`
	MonReg      numeric.Float `json:"mon_reg"`
	TueReg      numeric.Float `json:"tue_reg"`
	WedReg      numeric.Float `json:"wed_reg"`
	ThuReg      numeric.Float `json:"thu_reg"`
	FriReg      numeric.Float `json:"fri_reg"`
	SatReg      numeric.Float `json:"sat_reg"`
	SunReg      numeric.Float `json:"sun_reg"`
	MonOT       numeric.Float `json:"mon_ot"`
	TueOT       numeric.Float `json:"tue_ot"`
	WedOT       numeric.Float `json:"wed_ot"`
	ThuOT       numeric.Float `json:"thu_ot"`
	FriOT       numeric.Float `json:"fri_ot"`
	SatOT       numeric.Float `json:"sat_ot"`
	SunOT       numeric.Float `json:"sun_ot"`
	TotalHours  numeric.Float `json:"total_hours"`
}

// meaningfullyFilled reports whether the row carries any real data: an hour
// value above zero, a total above zero, or a non-empty description. Rows that
// fail this are never inserted, and existing rows reduced to this state are
// deleted.
func (e TimesheetEntryData) meaningfullyFilled() bool {
	hours := []numeric.Float{
		e.MonReg, e.TueReg, e.WedReg, e.ThuReg, e.FriReg, e.SatReg, e.SunReg,
		e.MonOT, e.TueOT, e.WedOT, e.ThuOT, e.FriOT, e.SatOT, e.SunOT,
		e.TotalHours,
	}
	for _, h := range hours {
		if h.Value() > 0 {
			return true
		}
	}
	return e.Description != ""
}

type SaveTimesheetResult struct {
	Timesheet *Timesheet       `json:"timesheet"`
	Entries   []TimesheetEntry `json:"entries"`
}

type EditEntriesRequest struct {
	TimesheetID numeric.Int          `json:"timesheetId"`
	Entries     []TimesheetEntryData `json:"entries"`
}

type SignTimesheetRequest struct {
	TimesheetID numeric.Int `json:"timesheet_id"`
	Signed      bool        `json:"signed"`
	SignedBy    string      `json:"signed_by"`
}
