package projecterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrMissingProjectData = apperror.New(
		apperror.CodeInvalidInput,
		"No project data provided.",
		http.StatusBadRequest,
	)
	ErrMissingProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Project ID is Required",
		http.StatusBadRequest,
	)
)
