package routes

import (
	"clinic-registry/internal/controllers"
	"clinic-registry/internal/dto"
	"clinic-registry/internal/repositories"
	"clinic-registry/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runSurgeryRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	surgeryRepository := repositories.NewSurgeryRepository(dbConn)
	surgeryService := services.NewSurgeryService(surgeryRepository, logger)
	surgeryCtrl := controllers.NewCrudController[dto.CreateSurgeryDTO, dto.UpdateSurgeryDTO, dto.SurgeryDTO](surgeryService, "surgery", logger)

	surgeryGroup := api.Group("/surgeries")
	{
		surgeryGroup.GET("", surgeryCtrl.List)
		surgeryGroup.GET("/:id", surgeryCtrl.Find)
		surgeryGroup.POST("", surgeryCtrl.Create)
		surgeryGroup.PATCH("/:id", surgeryCtrl.Update)
		surgeryGroup.DELETE("/:id", surgeryCtrl.Delete)
	}
}
