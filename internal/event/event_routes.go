package event

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	events := r.Group("/events")
	events.Use(middleware.AuthMiddleware())
	events.Use(rbac.Authorize(enforcer, "events", "write"))
	{
		events.POST("/new-event",
			middleware.RateLimitByUser(2, 10),
			handler.Save,
		)
		events.GET("/:date", handler.GetByMonth)
		events.PUT("/update/:eventId",
			middleware.RateLimitByUser(2, 10),
			handler.Edit,
		)
		events.DELETE("/delete/:eventId",
			middleware.RateLimitByUser(1, 5),
			handler.Delete,
		)
	}
}
