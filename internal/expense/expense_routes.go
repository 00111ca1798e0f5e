package expense

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	expenses.Use(rbac.Authorize(enforcer, "expenses", "write"))
	{
		expenses.POST("/save",
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb),
			handler.Save,
		)
		expenses.GET("/:id", handler.GetByEmployee)
		expenses.GET("/entries/:id", handler.GetEntries)
		expenses.DELETE("/delete-expense/:id",
			middleware.RateLimitByUser(0.5, 3),
			handler.Delete,
		)
		expenses.DELETE("/expense-entry/:id",
			middleware.RateLimitByUser(0.5, 3),
			handler.DeleteEntry,
		)
		expenses.DELETE("/files/:fileId",
			middleware.RateLimitByUser(0.5, 3),
			handler.DeleteFile,
		)
	}
}
