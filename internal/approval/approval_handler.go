package approval

import (
	"encoding/json"
	"net/http"
	"time"

	approvalerrors "go-workforce/internal/approval/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

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

func (h *Handler) SaveTimesheetStatuses(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var changes []TimesheetStatusChange
	if err := c.ShouldBindJSON(&changes); err != nil {
		httpErr := apperror.ToHTTP(approvalerrors.ErrNoTimesheetData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	results, err := h.service.SaveTimesheetStatuses(c.Request.Context(), changes)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	h.cacheIdempotentResponse(c, "Timesheets updated successfully.", results)
	response.Success(c, http.StatusOK, "Timesheets updated successfully.", results)
}

func (h *Handler) SaveExpenseStatuses(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var changes []ExpenseStatusChange
	if err := c.ShouldBindJSON(&changes); err != nil {
		httpErr := apperror.ToHTTP(approvalerrors.ErrNoExpenseData)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	results, err := h.service.SaveExpenseStatuses(c.Request.Context(), changes)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	h.cacheIdempotentResponse(c, "Expenses updated successfully.", results)
	response.Success(c, http.StatusOK, "Expenses updated successfully.", results)
}
