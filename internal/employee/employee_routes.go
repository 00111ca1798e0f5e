package employee

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/all-employees",
			middleware.RateLimitByUser(5, 20),
			handler.GetAllEmployees,
		)
		user.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			handler.GetUserByID,
		)
	}
}
