package roster

import (
	"time"

	"freshbit/internal/domain"
	"freshbit/internal/middleware"
	"freshbit/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rbacService rbac.Service, rdb redis.Cmdable) {
	drives := r.Group("/college/drives/:id")
	drives.Use(authMW, middleware.RequireRoles(domain.RoleCollege))
	{
		drives.POST("/upload-students",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceRoster, rbac.ActionUpload),
			handler.Upload,
		)
		drives.POST("/confirm-students",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceRoster, rbac.ActionConfirm),
			middleware.Idempotency(rdb, 10*time.Minute),
			handler.Confirm,
		)
	}

	students := r.Group("/college/students")
	students.Use(authMW, middleware.RequireRoles(domain.RoleCollege))
	{
		students.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStudent, rbac.ActionRead),
			handler.ListStudents,
		)
		students.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStudent, rbac.ActionUpdate),
			handler.UpdateStudent,
		)
		students.DELETE("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceStudent, rbac.ActionDelete),
			handler.DeleteStudent,
		)
	}
}
