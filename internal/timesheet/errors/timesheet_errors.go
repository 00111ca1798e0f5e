package timesheeterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet not found",
		http.StatusNotFound,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet entry not found",
		http.StatusNotFound,
	)
	ErrNotSheetOwner = apperror.New(
		apperror.CodeForbidden,
		"You are not authorized to view this user's details",
		http.StatusForbidden,
	)
	ErrIDMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Timesheet id in request param does not match the one in request body",
		http.StatusBadRequest,
	)
	ErrInvalidRequestData = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid request data",
		http.StatusBadRequest,
	)
	ErrInvalidWeekEnding = apperror.New(
		apperror.CodeInvalidInput,
		"week_ending must be a valid date",
		http.StatusBadRequest,
	)

	// Business conflicts: reported as HTTP 200 with internalStatus "fail".
	ErrDuplicateWeek    = apperror.Conflict("Timesheet Already Exists (Existing Date)")
	ErrAlreadyProcessed = apperror.Conflict("Timesheet Already Processed")
)
