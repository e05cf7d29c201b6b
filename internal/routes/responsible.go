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

func runResponsibleRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	responsibleRepository := repositories.NewResponsibleRepository(dbConn)
	responsibleService := services.NewResponsibleService(responsibleRepository, logger)
	responsibleCtrl := controllers.NewCrudController[dto.CreateResponsibleDTO, dto.UpdateResponsibleDTO, dto.ResponsibleDTO](responsibleService, "responsible", logger)

	responsibleGroup := api.Group("/responsibles")
	{
		responsibleGroup.GET("", responsibleCtrl.List)
		responsibleGroup.GET("/:id", responsibleCtrl.Find)
		responsibleGroup.POST("", responsibleCtrl.Create)
		responsibleGroup.PATCH("/:id", responsibleCtrl.Update)
		responsibleGroup.DELETE("/:id", responsibleCtrl.Delete)
	}
}
