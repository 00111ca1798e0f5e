package event

import "time"

type Event struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID      int64     `gorm:"not null;index" json:"employee_id"`
	Start           time.Time `gorm:"type:date;not null" json:"start"`
	EndDate         time.Time `gorm:"type:date;not null" json:"end_date"`
	Title           string    `gorm:"not null" json:"title"`
	LongDescription string    `json:"long_description"`
	BackColorID     *string   `json:"back_color_id"`
	ForeColorID     *string   `json:"fore_color_id"`
	FormattedMonth  string    `gorm:"not null;index" json:"formatted_month"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Event) TableName() string { return "event" }

// EventWithEmployee joins the owning employee's display name onto the event
// for the calendar view.
type EventWithEmployee struct {
	Event
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
