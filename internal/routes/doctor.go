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

func runDoctorRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	doctorRepository := repositories.NewDoctorRepository(dbConn)
	doctorService := services.NewDoctorService(doctorRepository, logger)
	doctorCtrl := controllers.NewCrudController[dto.CreateDoctorDTO, dto.UpdateDoctorDTO, dto.DoctorDTO](doctorService, "doctor", logger)

	doctorGroup := api.Group("/doctors")
	{
		doctorGroup.GET("", doctorCtrl.List)
		doctorGroup.GET("/:id", doctorCtrl.Find)
		doctorGroup.POST("", doctorCtrl.Create)
		doctorGroup.PATCH("/:id", doctorCtrl.Update)
		doctorGroup.DELETE("/:id", doctorCtrl.Delete)
	}
}
