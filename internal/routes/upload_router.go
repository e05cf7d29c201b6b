package routes

import (
	"clinic-registry/internal/controllers"
	"clinic-registry/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runUploadRouter(api *echo.Group, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	importService, err := buildImportService(dbConn, redisClient, logger, cfg)
	if err != nil {
		logger.Fatal("could not set up file storage", zap.Error(err))
	}
	uploadCtrl := controllers.NewUploadController(importService, logger)

	api.POST("/upload", uploadCtrl.Upload)
}
