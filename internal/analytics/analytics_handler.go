package analytics

import (
	"net/http"

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
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// serve handler tanpa parameter selain principal.
func serve[T any](h *Handler, fn func(*gin.Context) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := fn(c)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) AdminStats(c *gin.Context) {
	serve(h, func(c *gin.Context) (AdminStatsResponse, error) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return AdminStatsResponse{}, apperror.ErrUnauthorized
		}
		return h.service.AdminStats(c.Request.Context(), p)
	})(c)
}

func (h *Handler) AdminOverview(c *gin.Context) {
	serve(h, func(c *gin.Context) (AdminOverviewResponse, error) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return AdminOverviewResponse{}, apperror.ErrUnauthorized
		}
		return h.service.AdminOverview(c.Request.Context(), p)
	})(c)
}

func (h *Handler) CompanyStats(c *gin.Context) {
	serve(h, func(c *gin.Context) (CompanyStatsResponse, error) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return CompanyStatsResponse{}, apperror.ErrUnauthorized
		}
		return h.service.CompanyStats(c.Request.Context(), p)
	})(c)
}

func (h *Handler) CollegeStats(c *gin.Context) {
	serve(h, func(c *gin.Context) (CollegeStatsResponse, error) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return CollegeStatsResponse{}, apperror.ErrUnauthorized
		}
		return h.service.CollegeStats(c.Request.Context(), p)
	})(c)
}

func (h *Handler) CollegeDrive(c *gin.Context) {
	serve(h, func(c *gin.Context) (CollegeDriveResponse, error) {
		p, ok := middleware.CurrentPrincipal(c)
		if !ok {
			return CollegeDriveResponse{}, apperror.ErrUnauthorized
		}
		driveID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return CollegeDriveResponse{}, driveerrors.ErrInvalidDriveID
		}
		return h.service.CollegeDrive(c.Request.Context(), p, driveID)
	})(c)
}
