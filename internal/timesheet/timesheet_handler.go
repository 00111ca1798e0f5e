package timesheet

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"
	timesheeterrors "go-workforce/internal/timesheet/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(s Service, rdb *redis.Client) *Handler {
	return &Handler{service: s, rdb: rdb}
}

// releaseIdempotencyLock frees the in-flight lock set by the idempotency
// middleware; cacheIdempotentResponse stores the success envelope so retries
// with the same key replay instead of re-running the save.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

func (h *Handler) cacheIdempotentResponse(c *gin.Context, message string, data any) {
	if h.rdb == nil {
		return
	}
	ck := c.GetString("idempotency_cache_key")
	if ck == "" {
		return
	}
	payload, err := json.Marshal(response.Envelope{
		Message:        message,
		Data:           data,
		InternalStatus: response.StatusSuccess,
	})
	if err != nil {
		return
	}
	h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour)
}

func (h *Handler) Save(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var req SaveTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		httpErr := apperror.ToHTTP(mapped)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	result, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		if apperror.IsConflict(err) {
			httpErr := apperror.ToHTTP(err)
			response.Fail(c, httpErr.Message, gin.H{
				"timesheet": []any{},
				"entries":   []any{},
			})
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	h.cacheIdempotentResponse(c, "Timesheet Saved Successfully", result)
	response.Success(c, http.StatusOK, "Timesheet Saved Successfully", result)
}

func (h *Handler) EditEntries(c *gin.Context) {
	var req EditEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	entries, err := h.service.EditEntries(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Timesheet Saved Successfully", entries)
}

func (h *Handler) Sign(c *gin.Context) {
	paramID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	var req SignTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	if paramID != req.TimesheetID.Value() {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrIDMismatch)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	sheet, err := h.service.Sign(c.Request.Context(), paramID, req.Signed, req.SignedBy)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Timesheet signed successfully", sheet)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	requesterID, _ := strconv.ParseInt(c.GetString("user_id"), 10, 64)

	sheets, err := h.service.GetByEmployee(c.Request.Context(), requesterID, employeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Timesheet Fetched!", sheets)
}

func (h *Handler) GetEntries(c *gin.Context) {
	timesheetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	entries, err := h.service.GetEntries(c.Request.Context(), timesheetID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Timesheet Entries Fetched Successfully!", entries)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Timesheet Deleted Successfully", []any{})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(timesheeterrors.ErrInvalidRequestData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), id); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Timesheet Entry Deleted Successfully", nil)
}
