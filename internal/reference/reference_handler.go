package reference

import (
	"net/http"

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

func (h *Handler) GetProjects(c *gin.Context) {
	projects, err := h.service.GetActiveProjects(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "Failed to retrieve projects", []any{})
		return
	}
	response.Success(c, http.StatusOK, "Projects Fetched Successfully", projects)
}

func (h *Handler) GetPhases(c *gin.Context) {
	phases, err := h.service.GetPhases(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "Failed to retrieve phases", []any{})
		return
	}
	response.Success(c, http.StatusOK, "Phases Fetched Successfully", phases)
}

func (h *Handler) GetCostCodes(c *gin.Context) {
	codes, err := h.service.GetCostCodes(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "Failed to retrieve cost codes", []any{})
		return
	}
	response.Success(c, http.StatusOK, "Cost Codes Fetched Successfully", codes)
}

func (h *Handler) GetMiscCodes(c *gin.Context) {
	misc, err := h.service.GetMisc(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "Failed to retrieve miscellaneous codes", []any{})
		return
	}
	response.Success(c, http.StatusOK, "Miscellaneous Fetched Successfully", misc)
}

func (h *Handler) GetCustomers(c *gin.Context) {
	customers, err := h.service.GetCustomers(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "Failed to retrieve Customers", []any{})
		return
	}
	response.Success(c, http.StatusOK, "Customers Fetched Successfully", customers)
}
