package project

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the project surface twice: managers can list and edit,
// admins additionally create and delete.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	manager := r.Group("/manager")
	manager.Use(middleware.AuthMiddleware())
	manager.Use(rbac.Authorize(enforcer, "projects", "write"))
	{
		manager.GET("/projects/get-all", handler.GetAll)
		manager.PUT("/projects/edit/:projectId",
			middleware.RateLimitByUser(2, 10),
			handler.Edit,
		)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(rbac.Authorize(enforcer, "admin-projects", "write"))
	{
		admin.GET("/projects/get-all", handler.GetAll)
		admin.POST("/projects/create",
			middleware.RateLimitByUser(2, 10),
			handler.Create,
		)
		admin.PUT("/projects/edit/:projectId",
			middleware.RateLimitByUser(2, 10),
			handler.Edit,
		)
		admin.DELETE("/projects/delete/:id",
			middleware.RateLimitByUser(1, 5),
			handler.Delete,
		)
	}
}
