package event

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

func (h *Handler) Save(c *gin.Context) {
	var req SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	created, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	message := "Event updated successfully."
	if created {
		message = "Event created successfully."
	}
	response.Success(c, http.StatusOK, message, []any{})
}

func (h *Handler) GetByMonth(c *gin.Context) {
	events, err := h.service.GetByMonth(c.Request.Context(), c.Param("date"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Events fetched successfully", events)
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	var req SaveEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	if err := h.service.Edit(c.Request.Context(), id, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Event Edited successfully", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("eventId"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Event deleted successfully", gin.H{"deleted": deleted})
}
