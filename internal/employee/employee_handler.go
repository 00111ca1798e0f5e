package employee

import (
	"net/http"
	"strconv"

	employeeerrors "go-workforce/internal/employee/errors"
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

func (h *Handler) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(employeeerrors.ErrInvalidEmployeeID)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	requesterID, _ := strconv.ParseInt(c.GetString("user_id"), 10, 64)

	empl, err := h.service.GetByID(c.Request.Context(), requesterID, id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Request Successful!", gin.H{"employee": empl})
}

func (h *Handler) GetAllEmployees(c *gin.Context) {
	names, err := h.service.GetAllNames(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Request Successful!", names)
}
