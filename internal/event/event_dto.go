package event

import "go-workforce/internal/shared/numeric"

type SaveEventRequest struct {
	ID              numeric.Int `json:"id"`
	EmployeeID      numeric.Int `json:"employee_id"`
	Start           string      `json:"start"`
	EndDate         string      `json:"end_date"`
	Title           string      `json:"title"`
	LongDescription string      `json:"long_description"`
	BackColorID     *string     `json:"back_color_id"`
	ForeColorID     *string     `json:"fore_color_id"`
	FormattedMonth  string      `json:"formatted_month"`
}
