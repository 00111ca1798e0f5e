package expense

import "go-workforce/internal/shared/numeric"

// ExpenseData and ExpenseEntriesData arrive as JSON strings inside a
// multipart form, alongside the receipt files. Numeric fields tolerate
// strings and nulls; defaults are applied before the meaningful-fill check.
type ExpenseData struct {
	ID          numeric.Int   `json:"id"`
	EmployeeID  numeric.Int   `json:"employee_id"`
	DateStart   string        `json:"date_start"`
	NumOfDays   numeric.Int   `json:"num_of_days"`
	Signed      bool          `json:"signed"`
	Approved    bool          `json:"approved"`
	Paid        bool          `json:"paid"`
	DatePaid    string        `json:"date_paid"`
	Total       numeric.Float `json:"total"`
	ApprovedBy  string        `json:"approved_by"`
	ProcessedBy string        `json:"processed_by"`
	SubmittedBy string        `json:"submitted_by"`
	Message     string        `json:"message"`
}

// defaultPurpose is what an empty purpose is stored as; it never counts as
// real data.
const defaultPurpose = "Nothing"

type ExpenseEntryData struct {
	ID                         numeric.Int   `json:"id"`
	ProjectID                  numeric.Int   `json:"project_id"`
	Purpose                    string        `json:"purpose"`
	Day                        numeric.Int   `json:"day"`
	DestinationName            string        `json:"destination_name"`
	DestinationCost            numeric.Float `json:"destination_cost"`
	LodgingCost                numeric.Float `json:"lodging_cost"`
	OtherExpenseCost           numeric.Float `json:"other_expense_cost"`
	CarRentalCost              numeric.Float `json:"car_rental_cost"`
	Miles                      numeric.Float `json:"miles"`
	MilesCost                  numeric.Float `json:"miles_cost"`
	PerdiemCost                numeric.Float `json:"perdiem_cost"`
	EntertainmentCost          numeric.Float `json:"entertainment_cost"`
	MiscellaneousDescriptionID numeric.Int   `json:"miscellaneous_description_id"`
	MiscellaneousAmount        numeric.Float `json:"miscellaneous_amount"`
}

// meaningfullyFilled reports whether the row carries any real data: a cost
// above zero, a destination name, or a purpose. The defaulted "Nothing"
// purpose does not count.
func (e ExpenseEntryData) meaningfullyFilled() bool {
	costs := []numeric.Float{
		e.DestinationCost, e.LodgingCost, e.OtherExpenseCost, e.CarRentalCost,
		e.Miles, e.MilesCost, e.PerdiemCost, e.EntertainmentCost, e.MiscellaneousAmount,
	}
	for _, c := range costs {
		if c.Value() > 0 {
			return true
		}
	}
	if e.DestinationName != "" {
		return true
	}
	return e.Purpose != "" && e.Purpose != defaultPurpose
}

// ReceiptUpload pairs a stored receipt path with the entry id the client
// associated it with. Receipts attach to the sheet; the entry pairing is
// accepted but not persisted.
type ReceiptUpload struct {
	StoredPath string
	EntryID    int64
}

type SaveExpenseRequest struct {
	ExpenseData        ExpenseData
	ExpenseEntriesData []ExpenseEntryData
	Receipts           []ReceiptUpload
}

type SaveExpenseResult struct {
	Expense *Expense       `json:"expense"`
	Entries []ExpenseEntry `json:"entries"`
}
