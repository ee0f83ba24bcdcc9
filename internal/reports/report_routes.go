package reports

import (
	"github.com/JohanKruger/traindev-api/internal/middleware"
	"github.com/JohanKruger/traindev-api/internal/userpermission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, permissions middleware.PermissionChecker) {
	rep := r.Group("/reports/training-records")
	rep.Use(middleware.AuthMiddleware())
	rep.Use(middleware.RateLimitByUser(2, 5))
	{
		rep.GET("/export", handler.Export)
		rep.GET("/export/by-date", handler.ExportByDate)
		rep.GET("/export/by-personnel/:personnelNumber", handler.ExportByPersonnelNumber)
		rep.GET("/export/by-event/:id", handler.ExportByTrainingEvent)
		rep.GET("/export/filtered", handler.ExportFiltered)

		// The file download is the one report surface behind a grant.
		rep.GET("/export/csv",
			middleware.RequirePermission(permissions, userpermission.CodeExportReport),
			handler.ExportCSV)
	}
}
