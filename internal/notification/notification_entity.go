package notification

import "time"

// Notification is the in-app inbox row materialized from a sheet lifecycle
// event.
type Notification struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID int64     `gorm:"not null;index" json:"employee_id"`
	SheetType  string    `gorm:"not null" json:"sheet_type"`
	SheetID    int64     `gorm:"not null" json:"sheet_id"`
	EventType  string    `gorm:"not null" json:"event_type"`
	Period     string    `gorm:"not null" json:"period"`
	Message    string    `gorm:"not null" json:"message"`
	Read       bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Notification) TableName() string { return "notification" }
