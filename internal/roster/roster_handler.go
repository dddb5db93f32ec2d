package roster

import (
	"net/http"
	"strconv"
	"strings"

	"freshbit/internal/middleware"
	rostererrors "freshbit/internal/roster/errors"
	"freshbit/internal/shared/apperror"
	"freshbit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadBytes = 5 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("roster.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("roster.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("roster request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Upload(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("id"))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		h.writeServiceError(c, rostererrors.ErrFileRequired)
		return
	}
	if fh.Size > maxUploadBytes {
		h.writeServiceError(c, rostererrors.ErrFileTooLarge)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, rostererrors.ErrUnreadableFile)
		return
	}
	defer f.Close()

	result, err := h.service.Preview(c.Request.Context(), p, driveID, fh.Filename, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Confirm(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("id"))
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Confirm(c.Request.Context(), p, driveID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	status := http.StatusOK
	if result.Linked > 0 {
		status = http.StatusCreated
	}
	response.Success(c, status, result, nil)
}

func (h *Handler) ListStudents(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	page, pageSize := response.PageParams(c)
	filter := StudentFilter{
		Query:    c.Query("q"),
		Branch:   c.Query("branch"),
		Page:     page,
		PageSize: pageSize,
	}
	if v := strings.TrimSpace(c.Query("graduation_year")); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("graduation_year"))
			return
		}
		filter.GraduationYear = y
	}
	if v := strings.TrimSpace(c.Query("drive_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("drive_id"))
			return
		}
		filter.DriveID = id
	}

	result, total, err := h.service.ListStudents(c.Request.Context(), p, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, result, &meta)
}

func (h *Handler) UpdateStudent(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, rostererrors.ErrInvalidStudentID)
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	st, err := h.service.UpdateStudent(c.Request.Context(), p, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st, nil)
}

func (h *Handler) DeleteStudent(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, rostererrors.ErrInvalidStudentID)
		return
	}

	if err := h.service.DeleteStudent(c.Request.Context(), p, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id.String()}, nil)
}
