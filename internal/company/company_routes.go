package company

import (
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	company := r.Group("/company")
	company.Use(authMW)
	{
		company.GET("/me",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionRead),
			handler.GetMe,
		)

		// jarang dilakukan, 1x per 10 detik
		company.PUT("/me",
			middleware.RateLimitByUser(0.1, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionUpdate),
			handler.UpdateMe,
		)
	}

	admin := r.Group("/admin/companies")
	admin.Use(authMW)
	{
		admin.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrg, rbac.ActionRead),
			handler.List,
		)
		admin.PATCH("/:id/approval",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOrg, rbac.ActionApprove),
			handler.SetApproval,
		)
	}
}
