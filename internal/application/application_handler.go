package application

import (
	"net/http"
	"strings"

	applicationerrors "freshbit/internal/application/errors"
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
	l := zap.L().Named("application.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("application request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("drive_id"))
		return
	}

	var req CreateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}

	result, err := h.service.CreateApplications(c.Request.Context(), p, driveID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	status := http.StatusOK
	if result.Created > 0 {
		status = http.StatusCreated
	}
	response.Success(c, status, result, nil)
}

func (h *Handler) List(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("drive_id"))
		return
	}

	page, pageSize := response.PageParams(c)
	filter := ListFilter{Page: page, PageSize: pageSize}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("status"))); v != "" {
		if !Status(v).Valid() {
			h.writeServiceError(c, apperror.InvalidField("status"))
			return
		}
		filter.Status = Status(v)
	}
	if v := strings.TrimSpace(c.Query("college_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("college_id"))
			return
		}
		filter.CollegeID = id
	}

	result, total, err := h.service.List(c.Request.Context(), p, driveID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, result, &meta)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, applicationerrors.ErrInvalidApplicationID)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), p, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, app, nil)
}

// Bulk handler untuk /selection/:id/<action>.
func (h *Handler) Bulk(target Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			h.writeServiceError(c, apperror.ErrUnauthorized)
			return
		}
		driveID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("drive_id"))
			return
		}

		var req BulkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}

		result, err := h.service.Bulk(c.Request.Context(), p, driveID, target, req)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, result, nil)
	}
}
