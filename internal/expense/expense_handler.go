package expense

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	expenseerrors "go-workforce/internal/expense/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// maxReceiptSize caps a single uploaded receipt at 50MB.
const maxReceiptSize = 50 << 20

type Handler struct {
	service Service
	files   FileStore
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(s Service, files FileStore, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("expense.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.handler")
	}
	return &Handler{service: s, files: files, rdb: rdb, logger: l}
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

// Save accepts a multipart form: expenseData and expenseEntriesData are JSON
// strings, receipts carries the files, receiptEntryIds the entry pairing.
func (h *Handler) Save(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	var data ExpenseData
	if err := json.Unmarshal([]byte(c.PostForm("expenseData")), &data); err != nil {
		httpErr := apperror.ToHTTP(expenseerrors.ErrInvalidPayload)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	var entries []ExpenseEntryData
	if raw := c.PostForm("expenseEntriesData"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			httpErr := apperror.ToHTTP(expenseerrors.ErrInvalidPayload)
			response.Error(c, httpErr.Status, httpErr.Message, nil)
			return
		}
	}

	entryIDs := c.PostFormArray("receiptEntryIds")

	var receipts []ReceiptUpload
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for i, fileHeader := range form.File["receipts"] {
			if fileHeader.Size > maxReceiptSize {
				httpErr := apperror.ToHTTP(expenseerrors.ErrReceiptTooLarge)
				response.Error(c, httpErr.Status, httpErr.Message, nil)
				return
			}

			src, err := fileHeader.Open()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Could not read uploaded receipt", nil)
				return
			}
			stored, err := h.files.Save(fileHeader.Filename, src)
			src.Close()
			if err != nil {
				h.logger.Error("store receipt failed", zap.String("filename", fileHeader.Filename), zap.Error(err))
				response.Error(c, http.StatusInternalServerError, "Could not store uploaded receipt", nil)
				return
			}

			var entryID int64
			if i < len(entryIDs) {
				entryID, _ = strconv.ParseInt(entryIDs[i], 10, 64)
			}
			receipts = append(receipts, ReceiptUpload{StoredPath: stored, EntryID: entryID})
		}
	}

	result, err := h.service.Save(c.Request.Context(), SaveExpenseRequest{
		ExpenseData:        data,
		ExpenseEntriesData: entries,
		Receipts:           receipts,
	})
	if err != nil {
		for _, receipt := range receipts {
			if removeErr := h.files.Remove(receipt.StoredPath); removeErr != nil {
				h.logger.Error("cleanup stored receipt failed",
					zap.String("path", receipt.StoredPath),
					zap.Error(removeErr),
				)
			}
		}

		if apperror.IsConflict(err) {
			httpErr := apperror.ToHTTP(err)
			response.Fail(c, httpErr.Message, gin.H{
				"expense": []any{},
				"entries": []any{},
			})
			return
		}
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	h.cacheIdempotentResponse(c, "Expense Saved Successfully", result)
	response.Success(c, http.StatusOK, "Expense Saved Successfully", result)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
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

	response.Success(c, http.StatusOK, "Expense Sheets Fetched Successfully", sheets)
}

func (h *Handler) GetEntries(c *gin.Context) {
	expenseID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	entries, err := h.service.GetEntries(c.Request.Context(), expenseID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Expense entries fetched successfully", entries)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Expense and associated entries deleted successfully", []any{})
}

func (h *Handler) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	sheet, err := h.service.DeleteEntry(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Expense Entry Deleted Successfully", gin.H{"expense": sheet})
}

func (h *Handler) DeleteFile(c *gin.Context) {
	fileID, err := strconv.ParseInt(c.Param("fileId"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	if err := h.service.DeleteFile(c.Request.Context(), fileID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "File deleted successfully", nil)
}
