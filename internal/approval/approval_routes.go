package approval

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	for _, prefix := range []string{"/manager", "/admin"} {
		group := r.Group(prefix)
		group.Use(middleware.AuthMiddleware())
		group.Use(rbac.Authorize(enforcer, "approvals", "write"))
		{
			group.PUT("/timesheets/status-change",
				middleware.RateLimitByUser(1, 5),
				middleware.Idempotency(rdb),
				handler.SaveTimesheetStatuses,
			)
			group.PUT("/expenses/status-change",
				middleware.RateLimitByUser(1, 5),
				middleware.Idempotency(rdb),
				handler.SaveExpenseStatuses,
			)
		}
	}
}
