package notification

import (
	"net/http"
	"strconv"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) List(c *gin.Context) {
	employeeID, _ := strconv.ParseInt(c.GetString("user_id"), 10, 64)

	notifications, err := h.service.ListForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Notifications fetched successfully", notifications)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	employeeID, _ := strconv.ParseInt(c.GetString("user_id"), 10, 64)

	if err := h.service.MarkRead(c.Request.Context(), id, employeeID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}
