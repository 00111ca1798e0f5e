package auth

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.PUT("/signup",
			middleware.RateLimitByIP(0.5, 3),
			handler.Signup,
		)
		authGroup.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)
		authGroup.POST("/logout", handler.Logout)
		authGroup.POST("/request-reset",
			middleware.RateLimitByIP(0.2, 2),
			handler.RequestPasswordReset,
		)
		authGroup.POST("/reset-password",
			middleware.RateLimitByIP(0.5, 3),
			handler.ResetPassword,
		)
		authGroup.GET("/verify",
			middleware.AuthMiddleware(),
			handler.Verify,
		)
	}
}
