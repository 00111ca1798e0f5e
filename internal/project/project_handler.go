package project

import (
	"net/http"
	"strconv"

	projecterrors "go-workforce/internal/project/errors"
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

func (h *Handler) Create(c *gin.Context) {
	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(projecterrors.ErrMissingProjectData)
		response.Error(c, httpErr.Status, httpErr.Message, []any{})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, []any{})
		return
	}

	response.Success(c, http.StatusOK, "Project Created Successfully.", []gin.H{
		{"project_id": p.ID},
	})
}

func (h *Handler) Edit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("projectId"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(projecterrors.ErrMissingProjectID)
		response.Error(c, httpErr.Status, httpErr.Message, []any{})
		return
	}

	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(projecterrors.ErrMissingProjectData)
		response.Error(c, httpErr.Status, httpErr.Message, []any{})
		return
	}

	if err := h.service.Edit(c.Request.Context(), id, req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Project Edited Successfully", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpErr := apperror.ToHTTP(projecterrors.ErrMissingProjectID)
		response.Error(c, httpErr.Status, httpErr.Message, []any{})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Project Deleted Successfully", []any{})
}

func (h *Handler) GetAll(c *gin.Context) {
	projects, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "Request Successful!", projects)
}
