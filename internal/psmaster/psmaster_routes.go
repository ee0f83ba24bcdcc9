package psmaster

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	masters := r.Group("/training-ps-master")
	masters.Use(middleware.AuthMiddleware())
	masters.Use(middleware.RateLimitByUser(2, 5))
	{
		masters.GET("", handler.GetAll)
		masters.GET("/:personnelNumber", handler.GetByPersonnelNumber)
	}
}
