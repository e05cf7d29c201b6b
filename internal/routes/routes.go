package routes

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"clinic-registry/internal/importer"
	"clinic-registry/internal/repositories"
	"clinic-registry/internal/services"
	"clinic-registry/pkg/config"
	"clinic-registry/pkg/filestorage"
	"clinic-registry/pkg/lock"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	runSpecialtyRouter(api, dbConn, logger)
	runSurgeryRouter(api, dbConn, logger)
	runDoctorRouter(api, dbConn, logger)
	runResponsibleRouter(api, dbConn, logger)
	runPlanRouter(api, dbConn, logger)
	runUploadRouter(api, dbConn, redisClient, logger, cfg)
}

// importLocker picks the redis lease when redis is configured, otherwise a
// process-local lock. Either way two imports never run at once within one
// instance.
func importLocker(redisClient *redis.Client, cfg *config.Config) lock.Locker {
	if redisClient != nil {
		return lock.NewRedisLocker(redisClient, time.Duration(cfg.Import.LockTTLSeconds)*time.Second)
	}
	return lock.NewLocalLocker()
}

func buildImportService(dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) (*services.ImportService, error) {
	storage, err := filestorage.NewLocalFileStorage(cfg.Import.UploadDir)
	if err != nil {
		return nil, err
	}

	txManager := repositories.NewTxManager(dbConn)
	store := importer.NewPgStore(
		txManager,
		repositories.NewSpecialtyRepository(dbConn),
		repositories.NewPlanRepository(dbConn),
		repositories.NewResponsibleRepository(dbConn),
		repositories.NewDoctorRepository(dbConn),
		repositories.NewSurgeryRepository(dbConn),
	)
	orchestrator := importer.NewOrchestrator(store, logger)

	return services.NewImportService(orchestrator, storage, importLocker(redisClient, cfg), logger), nil
}
