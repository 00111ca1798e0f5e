package employee

// EmployeeName is the trimmed projection used by pickers and report joins.
type EmployeeName struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
