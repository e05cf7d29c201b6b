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

func runSpecialtyRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	specialtyRepository := repositories.NewSpecialtyRepository(dbConn)
	specialtyService := services.NewSpecialtyService(specialtyRepository, logger)
	specialtyCtrl := controllers.NewCrudController[dto.CreateSpecialtyDTO, dto.UpdateSpecialtyDTO, dto.SpecialtyDTO](specialtyService, "specialty", logger)

	specialtyGroup := api.Group("/specialties")
	{
		specialtyGroup.GET("", specialtyCtrl.List)
		specialtyGroup.GET("/:id", specialtyCtrl.Find)
		specialtyGroup.POST("", specialtyCtrl.Create)
		specialtyGroup.PATCH("/:id", specialtyCtrl.Update)
		specialtyGroup.DELETE("/:id", specialtyCtrl.Delete)
	}
}
