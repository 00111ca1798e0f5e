package timesheet

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	sheets := r.Group("/timesheets")
	sheets.Use(middleware.AuthMiddleware())
	sheets.Use(rbac.Authorize(enforcer, "timesheets", "write"))
	{
		sheets.POST("/save",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Save,
		)
		sheets.POST("/sign/:id",
			middleware.RateLimitByUser(1, 5),
			handler.Sign,
		)
		sheets.PUT("/edit-entries",
			middleware.RateLimitByUser(1, 5),
			handler.EditEntries,
		)
		sheets.GET("/:id", handler.GetByEmployee)
		sheets.GET("/entries/:id", handler.GetEntries)
		sheets.DELETE("/delete-timesheet/:id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Delete,
		)
		sheets.DELETE("/delete-timesheet-entry/:id",
			middleware.RateLimitByUser(0.5, 3),
			handler.DeleteEntry,
		)
	}
}
