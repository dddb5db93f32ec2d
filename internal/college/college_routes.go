package college

import (
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service) {
	me := r.Group("/college")
	me.Use(authMW)
	{
		me.GET("/me",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionRead),
			handler.GetMe,
		)
		me.PUT("/me",
			middleware.RateLimitByUser(0.1, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionUpdate),
			handler.UpdateMe,
		)
	}

	r.GET("/colleges",
		authMW,
		middleware.RateLimitByUser(2, 10),
		middleware.RBACAuthorize(rbacService, rbac.ResourceOrg, rbac.ActionBrowse),
		handler.Directory,
	)

	admin := r.Group("/admin/colleges")
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
