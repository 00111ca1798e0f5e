package reference

import "time"

type Phase struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string    `gorm:"not null" json:"number"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Phase) TableName() string {
	return "phase"
}

type CostCode struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CostCode    string    `gorm:"column:cost_code;not null" json:"cost_code"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (CostCode) TableName() string {
	return "cost_code"
}

type Miscellaneous struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string    `gorm:"not null" json:"number"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Miscellaneous) TableName() string {
	return "miscellaneous"
}
