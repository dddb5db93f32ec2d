package auth

import (
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 3), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(1, 10), handler.Refresh)
		auth.POST("/verify-email", middleware.RateLimitByIP(0.5, 5), handler.VerifyEmail)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.05, 2), handler.ForgotPassword)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.1, 3), handler.ResetPassword)

		auth.POST("/logout", authMW, handler.Logout)
		auth.GET("/me", authMW, middleware.RateLimitByUser(5, 20), handler.Me)
		auth.POST("/change-password", authMW, middleware.RateLimitByUser(0.1, 3), handler.ChangePassword)
	}

	admin := r.Group("/admin/users")
	admin.Use(authMW)
	{
		admin.PATCH("/:id/status",
			middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage),
			handler.UpdateUserStatus,
		)
	}
}
