package auth

import "time"

type Authentication struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"user_id"`
	Salt           string    `gorm:"not null" json:"-"`
	LastLogin      time.Time `gorm:"not null" json:"last_login"`
	FailedAttempts int       `gorm:"not null;default:0" json:"failed_attempts"`
	PasswordHash   string    `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Authentication) TableName() string { return "authentication" }
