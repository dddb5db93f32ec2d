package analytics

import (
	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	admin := r.Group("/admin")
	admin.Use(authMW, middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/stats",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, "admin"),
			handler.AdminStats,
		)
		admin.GET("/analytics/overview",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, "admin"),
			handler.AdminOverview,
		)
	}

	r.GET("/company/stats",
		authMW,
		middleware.RequireRoles(domain.RoleCompany),
		middleware.RateLimitByUser(2, 10),
		middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, "company"),
		handler.CompanyStats,
	)

	college := r.Group("/college")
	college.Use(authMW, middleware.RequireRoles(domain.RoleCollege))
	{
		college.GET("/stats",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, "college"),
			handler.CollegeStats,
		)
		college.GET("/drives/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, "college"),
			handler.CollegeDrive,
		)
	}
}
