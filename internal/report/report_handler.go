package report

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

func (h *Handler) GetTimesheetsByWeek(c *gin.Context) {
	sheets, err := h.service.GetTimesheetsByWeek(c.Request.Context(), c.Param("weekEnding"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Request Successful!", sheets)
}

func (h *Handler) GetOvertimeReport(c *gin.Context) {
	sheets, err := h.service.GetOvertimeReport(c.Request.Context(), c.Param("date"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Request Successful!", sheets)
}

func (h *Handler) GetLaborReport(c *gin.Context) {
	rows, err := h.service.GetLaborReport(c.Request.Context(), c.Param("date"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Request Successful!", rows)
}

func (h *Handler) GetExpenseReport(c *gin.Context) {
	rows, err := h.service.GetExpenseReport(c.Request.Context(), c.Param("date"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Expense Report with Entries fetched successfully", rows)
}

func (h *Handler) GetExpensesByMonthStart(c *gin.Context) {
	expenses, err := h.service.GetExpensesByMonthStart(c.Request.Context(), c.Param("dateStart"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Request Successful!", expenses)
}

func (h *Handler) GetExpenseByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	details, err := h.service.GetExpenseByID(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Expense Sheets Fetched Successfully", details)
}

func (h *Handler) GetTimesheetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.ErrInvalidInput)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	detail, err := h.service.GetTimesheetByID(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Timesheet Fetched Successfully", detail)
}

func (h *Handler) GetOpenTimesheets(c *gin.Context) {
	sheets, err := h.service.GetOpenTimesheets(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Open timesheets fetched successfully", sheets)
}

func (h *Handler) GetOpenExpenses(c *gin.Context) {
	expenses, err := h.service.GetOpenExpenses(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Open expenses fetched successfully", expenses)
}

func (h *Handler) GetAllEmployees(c *gin.Context) {
	employees, err := h.service.GetAllEmployees(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, "Request Successful!", employees)
}
