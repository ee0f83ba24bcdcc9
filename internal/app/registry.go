package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JohanKruger/traindev-api/internal/auditlog"
	"github.com/JohanKruger/traindev-api/internal/auth"
	"github.com/JohanKruger/traindev-api/internal/employee"
	"github.com/JohanKruger/traindev-api/internal/employeelookup"
	"github.com/JohanKruger/traindev-api/internal/lookup"
	"github.com/JohanKruger/traindev-api/internal/middleware"
	"github.com/JohanKruger/traindev-api/internal/psmaster"
	"github.com/JohanKruger/traindev-api/internal/reports"
	"github.com/JohanKruger/traindev-api/internal/shared/connection"
	"github.com/JohanKruger/traindev-api/internal/trainingevent"
	"github.com/JohanKruger/traindev-api/internal/trainingrecord"
	"github.com/JohanKruger/traindev-api/internal/userpermission"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	employeeLookupRepo := employeelookup.NewRepository(gormDB)
	lookupRepo := lookup.NewRepository(gormDB)
	trainingEventRepo := trainingevent.NewRepository(gormDB)
	trainingRecordRepo := trainingrecord.NewRepository(gormDB)
	userPermissionRepo := userpermission.NewRepository(gormDB)
	auditLogRepo := auditlog.NewRepository(gormDB)
	reportRepo := reports.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)
	employeeLookupService := employeelookup.NewService(employeeLookupRepo)
	lookupService := lookup.NewService(lookupRepo, rdb)
	trainingEventService := trainingevent.NewService(trainingEventRepo, lookupRepo)
	trainingRecordService := trainingrecord.NewService(trainingRecordRepo, trainingEventRepo)
	userPermissionService := userpermission.NewService(userPermissionRepo)
	auditLogService := auditlog.NewService(auditLogRepo)
	reportService := reports.NewService(reportRepo)

	directory := auth.NewDirectoryValidator(logger)
	authService := auth.NewService(directory, userPermissionService, logger)

	// --- Global middleware ---
	router.Use(middleware.RequestID(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.AuditTrail(auditlog.Recorder(auditLogService), logger))

	// --- Handlers & routes ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, auth.NewHandler(authService, logger))
		employee.RegisterRoutes(api, employee.NewHandler(employeeService, logger))
		employeelookup.RegisterRoutes(api, employeelookup.NewHandler(employeeLookupService, logger))
		lookup.RegisterRoutes(api, lookup.NewHandler(lookupService, logger))
		trainingevent.RegisterRoutes(api, trainingevent.NewHandler(trainingEventService, logger))
		trainingrecord.RegisterRoutes(api, trainingrecord.NewHandler(trainingRecordService, logger))
		userpermission.RegisterRoutes(api, userpermission.NewHandler(userPermissionService, logger))
		auditlog.RegisterRoutes(api, auditlog.NewHandler(auditLogService, logger))
		reports.RegisterRoutes(api, reports.NewHandler(reportService, logger), userPermissionService)
	}

	// The HR mart bridge only comes up when Oracle is configured; the
	// rest of the API works without it.
	if dsn := os.Getenv("ORACLE_DSN"); dsn != "" {
		oracleDB, err := connection.OpenOracle(dsn)
		if err != nil {
			return err
		}
		psMasterService := psmaster.NewService(psmaster.NewRepository(oracleDB), logger)
		psmaster.RegisterRoutes(api, psmaster.NewHandler(psMasterService, logger))
		logger.Info("oracle HR mart bridge enabled")
	} else {
		logger.Warn("ORACLE_DSN not set, training-ps-master routes disabled")
	}

	return nil
}
