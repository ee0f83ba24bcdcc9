package employeelookup

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	lookups := r.Group("/employee-lookup")
	lookups.Use(middleware.AuthMiddleware())
	lookups.Use(middleware.RateLimitByUser(5, 20))
	{
		lookups.GET("", handler.GetAll)
		lookups.GET("/:personnelNumber", handler.GetByPersonnelNumber)
		lookups.GET("/search/:term", handler.Search)
		lookups.GET("/race/:race", handler.GetByRace)
		lookups.GET("/gender/:gender", handler.GetByGender)
		lookups.GET("/ee-level/:eeLevel", handler.GetByEELevel)
		lookups.GET("/ee-category/:eeCategory", handler.GetByEECategory)
		lookups.GET("/disability/:hasDisability", handler.GetByDisability)

		lookups.POST("", handler.Create)
		lookups.PUT("/:personnelNumber", handler.Update)
		lookups.DELETE("/:personnelNumber", handler.Delete)
	}
}
