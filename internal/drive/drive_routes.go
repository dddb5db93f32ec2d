package drive

import (
	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	company := r.Group("/drives/company")
	company.Use(authMW, middleware.RequireRoles(domain.RoleCompany))
	{
		company.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionRead),
			handler.List,
		)
		company.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionCreate),
			handler.Create,
		)
		company.GET("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionRead),
			handler.Get,
		)
		company.PUT("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionUpdate),
			handler.Update,
		)
		company.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionDelete),
			handler.Delete,
		)
		company.PATCH("/:id/publish",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionPublish),
			handler.Publish,
		)
		company.POST("/:id/close",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionClose),
			handler.Close,
		)
		company.POST("/:id/activate-next-stage",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionAdvance),
			handler.ActivateNextStage,
		)
	}

	r.GET("/drives/:id/stages",
		authMW,
		middleware.RateLimitByUser(2, 10),
		middleware.RBACAuthorize(rbacService, rbac.ResourceStage, rbac.ActionRead),
		handler.Stages,
	)

	admin := r.Group("/admin/drives")
	admin.Use(authMW, middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionRead),
			handler.List,
		)
		admin.POST("/:id/activate-next-stage",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionAdvance),
			handler.ActivateNextStage,
		)
		admin.POST("/:id/close",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionClose),
			handler.Close,
		)
	}

	college := r.Group("/college/drives")
	college.Use(authMW, middleware.RequireRoles(domain.RoleCollege))
	{
		college.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionRead),
			handler.List,
		)
		college.POST("/:id/activate-next-stage",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceDrive, rbac.ActionAdvance),
			handler.ActivateNextCollegeStage,
		)
	}
}
