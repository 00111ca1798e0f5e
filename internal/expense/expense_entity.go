package expense

import "time"

type Expense struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID    int64      `gorm:"not null;index;uniqueIndex:uq_expense_employee_start" json:"employee_id"`
	DateStart     time.Time  `gorm:"type:date;not null;uniqueIndex:uq_expense_employee_start" json:"date_start"`
	NumOfDays     int        `gorm:"not null" json:"num_of_days"`
	Signed        bool       `gorm:"not null;default:false" json:"signed"`
	Approved      bool       `gorm:"not null;default:false" json:"approved"`
	Paid          bool       `gorm:"not null;default:false" json:"paid"`
	DatePaid      *time.Time `gorm:"type:date" json:"date_paid"`
	DateProcessed *time.Time `gorm:"type:date" json:"date_processed"`
	Total         float64    `gorm:"not null" json:"total"`
	ApprovedBy    string     `gorm:"not null;default:None" json:"approved_by"`
	ProcessedBy   string     `gorm:"not null;default:None" json:"processed_by"`
	SubmittedBy   string     `gorm:"not null;default:None" json:"submitted_by"`
	Message       string     `gorm:"not null;default:None" json:"message"`

	Files []ExpenseFile `gorm:"foreignKey:ExpenseID" json:"expense_files,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Expense) TableName() string { return "expense" }

type ExpenseEntry struct {
	ID                         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ExpenseID                  int64   `gorm:"not null;index" json:"expense_id"`
	ProjectID                  int64   `gorm:"not null" json:"project_id"`
	Purpose                    string  `gorm:"not null;default:Nothing" json:"purpose"`
	Day                        *int    `json:"day"`
	DestinationName            string  `json:"destination_name"`
	DestinationCost            float64 `gorm:"type:decimal(10,2);not null" json:"destination_cost"`
	LodgingCost                float64 `gorm:"type:decimal(10,2);not null" json:"lodging_cost"`
	OtherExpenseCost           float64 `gorm:"type:decimal(10,2);not null" json:"other_expense_cost"`
	CarRentalCost              float64 `gorm:"type:decimal(10,2);not null" json:"car_rental_cost"`
	Miles                      float64 `gorm:"type:decimal(10,2);not null" json:"miles"`
	MilesCost                  float64 `gorm:"type:decimal(10,2);not null" json:"miles_cost"`
	PerdiemCost                float64 `gorm:"type:decimal(10,2);not null" json:"perdiem_cost"`
	EntertainmentCost          float64 `gorm:"type:decimal(10,2);not null" json:"entertainment_cost"`
	MiscellaneousDescriptionID int64   `gorm:"not null;default:1" json:"miscellaneous_description_id"`
	MiscellaneousAmount        float64 `gorm:"type:decimal(10,2);not null" json:"miscellaneous_amount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ExpenseEntry) TableName() string { return "expense_entry" }

// entryTotal is the amount one entry contributes to the sheet total.
func (e ExpenseEntry) entryTotal() float64 {
	return e.DestinationCost +
		e.LodgingCost +
		e.OtherExpenseCost +
		e.CarRentalCost +
		e.MilesCost +
		e.PerdiemCost +
		e.EntertainmentCost +
		e.MiscellaneousAmount
}

type ExpenseFile struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ExpenseID  int64     `gorm:"not null;index" json:"expense_id"`
	URL        string    `gorm:"not null" json:"url"`
	UploadDate time.Time `gorm:"not null" json:"upload_date"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ExpenseFile) TableName() string { return "expense_file" }
