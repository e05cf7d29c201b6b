package controllers

import (
	"net/http"
	"strconv"

	"clinic-registry/internal/services"
	apperrors "clinic-registry/pkg/errors"
	"clinic-registry/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CrudController serves the standard list/find/create/update/delete
// endpoints for one entity. C, U and R are the create, update and
// response payload types.
type CrudController[C any, U any, R any] struct {
	service services.Crud[C, U, R]
	name    string
	logger  *zap.Logger
}

func NewCrudController[C any, U any, R any](
	service services.Crud[C, U, R],
	name string,
	logger *zap.Logger,
) *CrudController[C, U, R] {
	return &CrudController[C, U, R]{service: service, name: name, logger: logger}
}

func (c *CrudController[C, U, R]) List(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.service.List(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.name+" list fetched", http.StatusOK)
}

func (c *CrudController[C, U, R]) Find(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := c.pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.service.Find(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.name+" found", http.StatusOK)
}

func (c *CrudController[C, U, R]) Create(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload C
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.service.Create(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.name+" created", http.StatusCreated)
}

func (c *CrudController[C, U, R]) Update(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := c.pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload U
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.service.Update(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, c.name+" updated", http.StatusOK)
}

func (c *CrudController[C, U, R]) Delete(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id, err := c.pathID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.Delete(reqCtx, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, c.name+" deleted", http.StatusOK)
}

func (c *CrudController[C, U, R]) pathID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(
			http.StatusBadRequest,
			"invalid id",
			err,
			map[string]interface{}{"param": ctx.Param("id")},
		)
	}
	return id, nil
}
