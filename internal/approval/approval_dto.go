package approval

import "go-workforce/internal/shared/numeric"

type TimesheetStatusChange struct {
	ID          numeric.Int `json:"id"`
	Approved    bool        `json:"approved"`
	ApprovedBy  string      `json:"approved_by"`
	Processed   bool        `json:"processed"`
	ProcessedBy string      `json:"processed_by"`
	Signed      bool        `json:"signed"`
	SubmittedBy string      `json:"submitted_by"`
	Message     string      `json:"message"`
}

type ExpenseStatusChange struct {
	ID          numeric.Int `json:"id"`
	Approved    bool        `json:"approved"`
	ApprovedBy  string      `json:"approved_by"`
	Paid        bool        `json:"paid"`
	ProcessedBy string      `json:"processed_by"`
	Signed      bool        `json:"signed"`
	SubmittedBy string      `json:"submitted_by"`
	Message     string      `json:"message"`
}

// StatusChangeResult reports how many rows one batch item touched. Unknown
// ids come back with Updated 0 rather than failing the batch.
type StatusChangeResult struct {
	ID      int64 `json:"id"`
	Updated int64 `json:"updated"`
}
