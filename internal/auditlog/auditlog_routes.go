package auditlog

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	logs := r.Group("/auditlogs")
	logs.Use(middleware.AuthMiddleware())
	logs.Use(middleware.RateLimitByUser(3, 10))
	{
		logs.GET("", handler.GetAll)
		logs.GET("/:id", handler.GetByID)
		logs.GET("/user/:userId", handler.GetByUser)
		logs.GET("/controller/:controller", handler.GetByController)
		logs.GET("/daterange", handler.GetByDateRange)
	}
}
