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

func runPlanRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	planRepository := repositories.NewPlanRepository(dbConn)
	planService := services.NewPlanService(planRepository, logger)
	planCtrl := controllers.NewCrudController[dto.CreatePlanDTO, dto.UpdatePlanDTO, dto.PlanDTO](planService, "plan", logger)

	planGroup := api.Group("/plans")
	{
		planGroup.GET("", planCtrl.List)
		planGroup.GET("/:id", planCtrl.Find)
		planGroup.POST("", planCtrl.Create)
		planGroup.PATCH("/:id", planCtrl.Update)
		planGroup.DELETE("/:id", planCtrl.Delete)
	}
}
