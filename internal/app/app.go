package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JohanKruger/traindev-api/internal/auditlog"
	"github.com/JohanKruger/traindev-api/internal/employee"
	"github.com/JohanKruger/traindev-api/internal/employeelookup"
	"github.com/JohanKruger/traindev-api/internal/lookup"
	"github.com/JohanKruger/traindev-api/internal/seed"
	"github.com/JohanKruger/traindev-api/internal/shared/connection"
	"github.com/JohanKruger/traindev-api/internal/trainingevent"
	"github.com/JohanKruger/traindev-api/internal/trainingrecord"
	"github.com/JohanKruger/traindev-api/internal/userpermission"
)

// BuildApp connects the infrastructure, migrates and seeds the schema,
// and registers every module's routes on the router.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		// Lookup caching degrades to direct queries without Redis.
		logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		logger.Info("redis connection established")
	}

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&employeelookup.EmployeeLookup{},
		&trainingevent.NonEmployee{},
		&lookup.LookupValue{},
		&trainingevent.TrainingEvent{},
		&trainingrecord.TrainingRecordEvent{},
		&auditlog.AuditLog{},
		&userpermission.UserPermission{},
	); err != nil {
		return err
	}

	if err := seed.NewSeeder(gormDB, logger).Run(context.Background()); err != nil {
		return err
	}

	return registerModules(router, gormDB, redisClient, logger)
}
