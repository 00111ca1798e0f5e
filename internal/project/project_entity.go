package project

import "time"

type Project struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string    `gorm:"not null" json:"number"`
	Description string    `gorm:"not null" json:"description"`
	StartDate   time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date;not null" json:"end_date"`
	ShortName   string    `gorm:"column:short_name;not null" json:"short_name"`
	Comment     string    `gorm:"not null" json:"comment"`
	Overtime    bool      `gorm:"not null" json:"overtime"`
	SgaFlag     bool      `gorm:"column:sga_flag;not null" json:"sga_flag"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CustomerID  int64     `gorm:"column:customer_id;not null" json:"customer_id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Project) TableName() string {
	return "project"
}

type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customer"
}
