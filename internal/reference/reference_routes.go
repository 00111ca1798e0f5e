package reference

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	misc := r.Group("/miscellaneous")
	misc.Use(middleware.AuthMiddleware())
	misc.Use(rbac.Authorize(enforcer, "reference", "read"))
	{
		misc.GET("/projects", handler.GetProjects)
		misc.GET("/phases", handler.GetPhases)
		misc.GET("/costCodes", handler.GetCostCodes)
		misc.GET("/miscCodes", handler.GetMiscCodes)
		misc.GET("/customers", handler.GetCustomers)
	}
}
