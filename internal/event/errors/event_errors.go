package eventerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Event not found or no changes made",
		http.StatusNotFound,
	)
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields: employee_id, start, end, title",
		http.StatusBadRequest,
	)
	ErrMissingDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date parameter is required",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"start and end_date must be valid dates",
		http.StatusBadRequest,
	)
)
