package approvalerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrNoTimesheetData = apperror.New(
		apperror.CodeInvalidInput,
		"No timesheet data provided.",
		http.StatusBadRequest,
	)
	ErrNoExpenseData = apperror.New(
		apperror.CodeInvalidInput,
		"No expense data provided.",
		http.StatusBadRequest,
	)
	ErrMissingTimesheetID = apperror.New(
		apperror.CodeInvalidInput,
		"Timesheet ID is required for updates.",
		http.StatusBadRequest,
	)
	ErrMissingExpenseID = apperror.New(
		apperror.CodeInvalidInput,
		"Expense ID is required for updates.",
		http.StatusBadRequest,
	)
)
