package lookup

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	lookups := r.Group("/lookup-values")
	lookups.Use(middleware.AuthMiddleware())
	lookups.Use(middleware.RateLimitByUser(5, 20))
	{
		lookups.GET("", handler.GetAll)
		lookups.GET("/:id", handler.GetByID)
		lookups.GET("/type/:type", handler.GetByType)
		lookups.GET("/type/:type/active", handler.GetActiveByType)
		lookups.GET("/parent/:parentId/children", handler.GetChildren)

		lookups.POST("", handler.Create)
		lookups.PUT("/:id", handler.Update)
		lookups.DELETE("/:id", handler.Delete)
	}
}
