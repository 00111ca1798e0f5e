package autherrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Wrong user name or password",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailNotFound = apperror.New(
		apperror.CodeNotFound,
		"No user found with that email",
		http.StatusNotFound,
	)
	ErrInvalidResetToken = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid or expired token",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not generate session token",
		http.StatusInternalServerError,
	)
)
