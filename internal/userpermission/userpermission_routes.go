package userpermission

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	perms := r.Group("/user-permission")
	perms.Use(middleware.AuthMiddleware())
	perms.Use(middleware.RateLimitByUser(5, 20))
	{
		perms.GET("", handler.GetAll)
		perms.GET("/:id", handler.GetByID)
		perms.GET("/username/:username", handler.GetByUsername)
		perms.GET("/permission-code/:code", handler.GetByPermissionCode)
		perms.GET("/check/:username/:code", handler.Check)
		perms.GET("/search", handler.Search)

		perms.POST("", handler.Create)
		perms.PUT("/:id", handler.Update)
		perms.DELETE("/:id", handler.Delete)
	}
}
