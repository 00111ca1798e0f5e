package expenseerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense not found",
		http.StatusNotFound,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense entry not found",
		http.StatusNotFound,
	)
	ErrFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"File not found",
		http.StatusNotFound,
	)
	ErrNotSheetOwner = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to view this user's details",
		http.StatusForbidden,
	)
	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"expenseData and expenseEntriesData must be valid JSON",
		http.StatusBadRequest,
	)
	ErrInvalidDateStart = apperror.New(
		apperror.CodeInvalidInput,
		"date_start must be a valid date",
		http.StatusBadRequest,
	)
	ErrReceiptTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Receipt exceeds the maximum upload size",
		http.StatusRequestEntityTooLarge,
	)

	// Business conflicts: reported as HTTP 200 with internalStatus "fail".
	ErrDuplicateDateStart = apperror.Conflict("Expense Already Exists (Existing Date)")
	ErrAlreadyPaid        = apperror.Conflict("Expense Already Paid")
)
