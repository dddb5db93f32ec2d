package invitation

import (
	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	company := r.Group("/company/drives/:id")
	company.Use(authMW)
	{
		company.POST("/invite",
			middleware.RequireRoles(domain.RoleCompany),
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceInvitation, rbac.ActionCreate),
			handler.Invite,
		)
		company.GET("/colleges",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceInvitation, rbac.ActionRead),
			handler.ListForDrive,
		)
		// company: managed_by; admin juga boleh override invitation_status
		company.PATCH("/colleges/:collegeId/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceInvitation, rbac.ActionManage),
			handler.UpdateBinding,
		)
	}

	college := r.Group("/college/invitations")
	college.Use(authMW, middleware.RequireRoles(domain.RoleCollege))
	{
		college.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceInvitation, rbac.ActionRead),
			handler.ListForCollege,
		)
		college.POST("/:id/respond",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceInvitation, rbac.ActionRespond),
			handler.Respond,
		)
	}
}
