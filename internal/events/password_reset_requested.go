package events

import "time"

const PasswordResetTopic = "wf.auth.password-reset.v1"

// PasswordResetRequestedEvent is consumed by the mailer, which lives outside
// this service.
type PasswordResetRequestedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID int64     `json:"employee_id"`
	Email      string    `json:"email"`
	ResetLink  string    `json:"reset_link"`
	OccurredAt time.Time `json:"occurred_at"`
}
