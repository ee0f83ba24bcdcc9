package auth

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authn := r.Group("/authentication")
	authn.Use(middleware.RateLimitByIP(1, 5))
	{
		authn.POST("/login", handler.Login)
	}
}
