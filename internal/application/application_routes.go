package application

import (
	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	// :id = drive id untuk create/list, application id untuk status
	apps := r.Group("/applications")
	apps.Use(authMW)
	{
		apps.POST("/:id/create",
			middleware.RequireRoles(domain.RoleCollege, domain.RoleAdmin),
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionCreate),
			handler.Create,
		)
		apps.GET("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionRead),
			handler.List,
		)
		apps.PATCH("/:id/status",
			middleware.RequireRoles(domain.RoleCompany, domain.RoleAdmin),
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionEvaluate),
			handler.UpdateStatus,
		)
	}

	selection := r.Group("/selection/:id")
	selection.Use(authMW, middleware.RequireRoles(domain.RoleCompany, domain.RoleAdmin))
	for action, target := range BulkTargets {
		selection.POST("/"+action,
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceApplication, rbac.ActionEvaluate),
			handler.Bulk(target),
		)
	}
}
