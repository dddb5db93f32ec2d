package college

import (
	"net/http"
	"strconv"

	"freshbit/internal/middleware"
	"freshbit/internal/shared/apperror"
	"freshbit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("college.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("college.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("college request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMe(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	col, err := h.service.GetProfile(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, col, nil)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req UpdateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	col, err := h.service.UpdateProfile(c.Request.Context(), p, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, col, nil)
}

func (h *Handler) List(c *gin.Context) {
	page, pageSize := response.PageParams(c)
	filter := ListFilter{Query: c.Query("q"), Page: page, PageSize: pageSize}
	if v := c.Query("approved"); v != "" {
		approved, err := strconv.ParseBool(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("approved"))
			return
		}
		filter.Approved = &approved
	}

	result, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, result, &meta)
}

func (h *Handler) SetApproval(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("id"))
		return
	}

	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	col, err := h.service.SetApproval(c.Request.Context(), id, *req.Approved)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, col, nil)
}

// Directory daftar college yang sudah approved, dipakai company untuk memilih target invite.
func (h *Handler) Directory(c *gin.Context) {
	page, pageSize := response.PageParams(c)
	approved := true
	result, total, err := h.service.List(c.Request.Context(), ListFilter{
		Approved: &approved,
		Query:    c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	for i := range result {
		result[i].OwnerEmail = ""
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, result, &meta)
}
