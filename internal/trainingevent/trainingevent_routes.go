package trainingevent

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	events := r.Group("/training-event")
	events.Use(middleware.AuthMiddleware())
	events.Use(middleware.RateLimitByUser(5, 20))
	{
		events.GET("", handler.GetAll)
		events.GET("/:id", handler.GetByID)
		events.GET("/employee/:personnelNumber", handler.GetByEmployee)
		events.GET("/non-employee/:idNumber", handler.GetByNonEmployee)
		events.GET("/event-type/:id", handler.GetByEventType)
		events.GET("/region/:id", handler.GetByRegion)
		events.GET("/province/:id", handler.GetByProvince)
		events.GET("/municipality/:id", handler.GetByMunicipality)
		events.GET("/site/:id", handler.GetBySite)
		events.GET("/search/:term", handler.Search)

		events.POST("", handler.Create)
		events.PUT("/:id", handler.Update)
		events.DELETE("/:id", handler.Delete)
	}
}
