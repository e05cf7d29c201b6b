package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-registry/internal/dto"
	"clinic-registry/pkg/customvalidator"
	apperrors "clinic-registry/pkg/errors"
	"clinic-registry/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSpecialtyService struct {
	findErr   error
	created   *dto.CreateSpecialtyDTO
	updated   *dto.UpdateSpecialtyDTO
	deletedID uint64
}

func (s *stubSpecialtyService) List(ctx context.Context, filter types.Filter) (*dto.Paginated[dto.SpecialtyDTO], error) {
	return &dto.Paginated[dto.SpecialtyDTO]{
		CurrentPage: filter.Page,
		TotalPages:  1,
		TotalItems:  1,
		Items:       []dto.SpecialtyDTO{{ID: 1, Name: "cardiologia", Active: true}},
	}, nil
}

func (s *stubSpecialtyService) Find(ctx context.Context, id uint64) (*dto.SpecialtyDTO, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &dto.SpecialtyDTO{ID: id, Name: "cardiologia", Active: true}, nil
}

func (s *stubSpecialtyService) Create(ctx context.Context, payload dto.CreateSpecialtyDTO) (*dto.SpecialtyDTO, error) {
	s.created = &payload
	return &dto.SpecialtyDTO{ID: 10, Name: payload.Name, Active: true}, nil
}

func (s *stubSpecialtyService) Update(ctx context.Context, id uint64, payload dto.UpdateSpecialtyDTO) (*dto.SpecialtyDTO, error) {
	s.updated = &payload
	return &dto.SpecialtyDTO{ID: id, Name: "renamed", Active: true}, nil
}

func (s *stubSpecialtyService) Delete(ctx context.Context, id uint64) error {
	s.deletedID = id
	return nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = customvalidator.NewValidator(validator.New())

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newSpecialtyController(service *stubSpecialtyService) *CrudController[dto.CreateSpecialtyDTO, dto.UpdateSpecialtyDTO, dto.SpecialtyDTO] {
	return NewCrudController[dto.CreateSpecialtyDTO, dto.UpdateSpecialtyDTO, dto.SpecialtyDTO](service, "specialty", zap.NewNop())
}

func TestCrudControllerList(t *testing.T) {
	ctrl := newSpecialtyController(&stubSpecialtyService{})
	ctx, rec := newTestContext(t, http.MethodGet, "/api/specialties?page=1&per_page=5", "")

	require.NoError(t, ctrl.List(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cardiologia"`)
	assert.Contains(t, rec.Body.String(), `"total_items":1`)
}

func TestCrudControllerFind(t *testing.T) {
	ctrl := newSpecialtyController(&stubSpecialtyService{})
	ctx, rec := newTestContext(t, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("7")

	require.NoError(t, ctrl.Find(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestCrudControllerFindBadID(t *testing.T) {
	ctrl := newSpecialtyController(&stubSpecialtyService{})
	ctx, rec := newTestContext(t, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("not-a-number")

	require.NoError(t, ctrl.Find(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCrudControllerFindNotFound(t *testing.T) {
	ctrl := newSpecialtyController(&stubSpecialtyService{findErr: apperrors.ErrNotFound})
	ctx, rec := newTestContext(t, http.MethodGet, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("7")

	require.NoError(t, ctrl.Find(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCrudControllerCreate(t *testing.T) {
	service := &stubSpecialtyService{}
	ctrl := newSpecialtyController(service)
	ctx, rec := newTestContext(t, http.MethodPost, "/api/specialties",
		`{"name":"Cardiologia","description":"Coração"}`)

	require.NoError(t, ctrl.Create(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, service.created)
	assert.Equal(t, "Cardiologia", service.created.Name)
}

func TestCrudControllerCreateValidation(t *testing.T) {
	service := &stubSpecialtyService{}
	ctrl := newSpecialtyController(service)
	ctx, rec := newTestContext(t, http.MethodPost, "/api/specialties", `{"description":"no name"}`)

	require.NoError(t, ctrl.Create(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, service.created)
}

func TestCrudControllerUpdate(t *testing.T) {
	service := &stubSpecialtyService{}
	ctrl := newSpecialtyController(service)
	ctx, rec := newTestContext(t, http.MethodPatch, "/", `{"name":"Renamed"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("3")

	require.NoError(t, ctrl.Update(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.updated)
	require.NotNil(t, service.updated.Name)
	assert.Equal(t, "Renamed", *service.updated.Name)
}

func TestCrudControllerDelete(t *testing.T) {
	service := &stubSpecialtyService{}
	ctrl := newSpecialtyController(service)
	ctx, rec := newTestContext(t, http.MethodDelete, "/", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("9")

	require.NoError(t, ctrl.Delete(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(9), service.deletedID)
}
