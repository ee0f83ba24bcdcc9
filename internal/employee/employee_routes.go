package employee

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employee")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.RateLimitByUser(5, 20))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:personnelNumber", handler.GetByPersonnelNumber)
		employees.GET("/search/:term", handler.Search)
		employees.GET("/race/:race", handler.GetByRace)
		employees.GET("/gender/:gender", handler.GetByGender)
		employees.GET("/ee-level/:eeLevel", handler.GetByEELevel)
		employees.GET("/ee-category/:eeCategory", handler.GetByEECategory)
		employees.GET("/disability/:hasDisability", handler.GetByDisability)
		employees.GET("/job-title/:jobTitle", handler.GetByJobTitle)
		employees.GET("/job-grade/:jobGrade", handler.GetByJobGrade)
		employees.GET("/site/:site", handler.GetBySite)
		employees.GET("/id-number/:idNumber", handler.GetByIDNumber)

		employees.POST("", handler.Create)
		employees.PUT("/:personnelNumber", handler.Update)
		employees.DELETE("/:personnelNumber", handler.Delete)
	}
}
