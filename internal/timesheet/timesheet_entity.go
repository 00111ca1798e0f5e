package timesheet

import "time"

type Timesheet struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID    int64      `gorm:"not null;index;uniqueIndex:uq_timesheet_employee_week" json:"employee_id"`
	WeekEnding    time.Time  `gorm:"type:date;not null;uniqueIndex:uq_timesheet_employee_week" json:"week_ending"`
	TotalRegHours float64    `gorm:"not null" json:"total_reg_hours"`
	TotalOvertime float64    `gorm:"not null" json:"total_overtime"`
	DateProcessed *time.Time `gorm:"type:date" json:"date_processed"`
	Processed     bool       `gorm:"not null;default:false" json:"processed"`
	Approved      bool       `gorm:"not null;default:false" json:"approved"`
	Signed        bool       `gorm:"not null;default:false" json:"signed"`
	ApprovedBy    string     `gorm:"not null;default:None" json:"approved_by"`
	ProcessedBy   string     `gorm:"not null;default:None" json:"processed_by"`
	SubmittedBy   string     `gorm:"not null;default:None" json:"submitted_by"`
	Message       string     `gorm:"not null;default:None" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Timesheet) TableName() string { return "timesheet" }

type TimesheetEntry struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	TimesheetID int64   `gorm:"not null;index" json:"timesheet_id"`
	ProjectID   int64   `gorm:"not null" json:"project_id"`
	PhaseID     int64   `gorm:"not null" json:"phase_id"`
	CostCodeID  int64   `gorm:"not null" json:"cost_code_id"`
	RowIndex    *int    `json:"row_index"`
	Description string  `json:"description"`
	MonReg      float64 `gorm:"type:decimal(10,2);not null" json:"mon_reg"`
	TueReg      float64 `gorm:"type:decimal(10,2);not null" json:"tue_reg"`
	WedReg      float64 `gorm:"type:decimal(10,2);not null" json:"wed_reg"`
	ThuReg      float64 `gorm:"type:decimal(10,2);not null" json:"thu_reg"`
	FriReg      float64 `gorm:"type:decimal(10,2);not null" json:"fri_reg"`
	SatReg      float64 `gorm:"type:decimal(10,2);not null" json:"sat_reg"`
	SunReg      float64 `gorm:"type:decimal(10,2);not null" json:"sun_reg"`
	MonOT       float64 `gorm:"type:decimal(10,2);not null;column:mon_ot" json:"mon_ot"`
	TueOT       float64 `gorm:"type:decimal(10,2);not null;column:tue_ot" json:"tue_ot"`
	WedOT       float64 `gorm:"type:decimal(10,2);not null;column:wed_ot" json:"wed_ot"`
	ThuOT       float64 `gorm:"type:decimal(10,2);not null;column:thu_ot" json:"thu_ot"`
	FriOT       float64 `gorm:"type:decimal(10,2);not null;column:fri_ot" json:"fri_ot"`
	SatOT       float64 `gorm:"type:decimal(10,2);not null;column:sat_ot" json:"sat_ot"`
	SunOT       float64 `gorm:"type:decimal(10,2);not null;column:sun_ot" json:"sun_ot"`
	TotalHours  float64 `gorm:"type:decimal(10,2);not null" json:"total_hours"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (TimesheetEntry) TableName() string { return "timesheet_entry" }
