package controllers

import (
	"net/http"

	"clinic-registry/internal/services"
	apperrors "clinic-registry/pkg/errors"
	"clinic-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UploadController struct {
	importService *services.ImportService
	logger        *zap.Logger
}

func NewUploadController(importService *services.ImportService, logger *zap.Logger) *UploadController {
	return &UploadController{importService: importService, logger: logger}
}

// Upload accepts a multipart workbook under the "file" field and runs a
// full import, returning the per-sheet summary.
func (c *UploadController) Upload(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "missing file field", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "could not read uploaded file", err, nil),
			c.logger,
		)
	}
	defer src.Close()

	summary, err := c.importService.RunFromUpload(reqCtx, src, fileHeader.Filename)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, summary, "import finished", http.StatusOK)
}
