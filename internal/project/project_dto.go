package project

import "go-workforce/internal/shared/numeric"

type SaveProjectRequest struct {
	Number          string      `json:"number"`
	Description     string      `json:"description"`
	ShortName       string      `json:"short_name"`
	Comment         string      `json:"comment"`
	Overtime        bool        `json:"overtime"`
	SgaFlag         bool        `json:"sga_flag"`
	CustomerID      numeric.Int `json:"customer_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerContact string      `json:"customer_contact"`
	StartDate       string      `json:"start_date"`
	EndDate         string      `json:"end_date"`
}

// ProjectWithCustomer is the get-all row: the project flattened together with
// its customer's name and contact.
type ProjectWithCustomer struct {
	Project
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
}
