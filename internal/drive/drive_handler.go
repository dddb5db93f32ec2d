package drive

import (
	"net/http"
	"strings"

	"freshbit/internal/domain"
	driveerrors "freshbit/internal/drive/errors"
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
	l := zap.L().Named("drive.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("drive.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	}
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("drive request failed", append(fields, zap.Error(err))...)
	} else {
		h.logger.Warn("drive request failed", fields...)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// principalAndID ambil principal dan :id; false berarti respons error sudah ditulis.
func (h *Handler) principalAndID(c *gin.Context) (principalID, bool) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return principalID{}, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.writeServiceError(c, driveerrors.ErrInvalidDriveID)
		return principalID{}, false
	}
	return principalID{p: p, id: id}, true
}

func (h *Handler) Create(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	d, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d, nil)
}

func (h *Handler) List(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	page, pageSize := response.PageParams(c)
	filter := ListFilter{Query: c.Query("q"), Page: page, PageSize: pageSize}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("status"))); v != "" {
		switch DriveStatus(v) {
		case StatusDraft, StatusPublished, StatusClosed:
			filter.Status = DriveStatus(v)
		default:
			h.writeServiceError(c, apperror.InvalidField("status"))
			return
		}
	}

	result, total, err := h.service.List(c.Request.Context(), p, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, result, &meta)
}

func (h *Handler) Get(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	d, err := h.service.Get(c.Request.Context(), in.p, in.id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) Update(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	var req UpdateDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	d, err := h.service.Update(c.Request.Context(), in.p, in.id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), in.p, in.id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "drive deleted"}, nil)
}

func (h *Handler) Publish(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	d, err := h.service.Publish(c.Request.Context(), in.p, in.id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

func (h *Handler) Close(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	d, err := h.service.Close(c.Request.Context(), in.p, in.id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d, nil)
}

// ActivateNextStage body opsional {"college_id": "..."}; kosong = pipeline level drive.
func (h *Handler) ActivateNextStage(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}

	var req ActivateNextStageRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.writeServiceError(c, apperror.MapValidationError(err))
			return
		}
	}
	var collegeID *uuid.UUID
	if req.CollegeID != "" {
		id, err := uuid.Parse(req.CollegeID)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("college_id"))
			return
		}
		collegeID = &id
	}

	h.advance(c, in, collegeID)
}

// ActivateNextCollegeStage dipakai COLLEGE: scope selalu college pemanggil.
func (h *Handler) ActivateNextCollegeStage(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	collegeID := in.p.OrgID
	h.advance(c, in, &collegeID)
}

func (h *Handler) advance(c *gin.Context, in principalID, collegeID *uuid.UUID) {
	result, err := h.service.ActivateNextStage(c.Request.Context(), in.p, in.id, collegeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Stages(c *gin.Context) {
	in, ok := h.principalAndID(c)
	if !ok {
		return
	}
	var collegeID *uuid.UUID
	if v := c.Query("college_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.writeServiceError(c, apperror.InvalidField("college_id"))
			return
		}
		collegeID = &id
	}

	result, err := h.service.Stages(c.Request.Context(), in.p, in.id, collegeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

type principalID struct {
	p  domain.Principal
	id uuid.UUID
}
