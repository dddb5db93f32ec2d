package invitation

import (
	"net/http"
	"strings"

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
	l := zap.L().Named("invitation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("invitation.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("invitation request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidField(name)
	}
	return id, nil
}

func (h *Handler) Invite(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuidParam(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Invite(c.Request.Context(), p, driveID, req)
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

func (h *Handler) ListForDrive(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuidParam(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result, err := h.service.ListForDrive(c.Request.Context(), p, driveID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) UpdateBinding(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	driveID, err := uuidParam(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	collegeID, err := uuidParam(c, "collegeId")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdateBindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.UpdateBinding(c.Request.Context(), p, driveID, collegeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) ListForCollege(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	page, pageSize := response.PageParams(c)
	filter := CollegeFilter{Page: page, PageSize: pageSize}
	if v := strings.ToUpper(strings.TrimSpace(c.Query("status"))); v != "" {
		switch InvitationStatus(v) {
		case StatusPending, StatusAccepted, StatusRejected:
			filter.Status = InvitationStatus(v)
		default:
			h.writeServiceError(c, apperror.InvalidField("status"))
			return
		}
	}

	result, total, err := h.service.ListForCollege(c.Request.Context(), p, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, result, &meta)
}

func (h *Handler) Respond(c *gin.Context) {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Respond(c.Request.Context(), p, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}
