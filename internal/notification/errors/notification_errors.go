package notificationerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var ErrNotificationNotFound = apperror.New(
	apperror.CodeNotFound,
	"Notification not found",
	http.StatusNotFound,
)
