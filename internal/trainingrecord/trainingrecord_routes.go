package trainingrecord

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/training-record-event")
	records.Use(middleware.AuthMiddleware())
	records.Use(middleware.RateLimitByUser(5, 20))
	{
		records.GET("", handler.GetAll)
		records.GET("/:id", handler.GetByID)
		records.GET("/training-event/:trainingEventId", handler.GetByTrainingEvent)
		records.GET("/personnel/:personnelNumber", handler.GetByPersonnelNumber)
		records.GET("/date-range", handler.GetByDateRange)
		records.GET("/with-evidence", handler.GetWithEvidence)
		records.GET("/without-evidence", handler.GetWithoutEvidence)
		records.GET("/costs/training-event/:id", handler.CostsByTrainingEvent)
		records.GET("/costs/personnel/:personnelNumber", handler.CostsByPersonnelNumber)
		records.GET("/costs/date-range", handler.CostsByDateRange)

		records.POST("", handler.Create)
		records.PUT("/:id", handler.Update)
		records.DELETE("/:id", handler.Delete)
	}
}
