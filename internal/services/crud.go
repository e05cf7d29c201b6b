package services

import (
	"context"

	"clinic-registry/internal/dto"
	"clinic-registry/pkg/types"
)

// Crud is the one CRUD surface every registry entity exposes, parameterized
// over its create/update/response DTOs. Controllers are written once against
// this interface; entity-specific behavior (normalization, defaults) lives in
// the concrete services.
type Crud[C any, U any, R any] interface {
	List(ctx context.Context, filter types.Filter) (*dto.Paginated[R], error)
	Find(ctx context.Context, id uint64) (*R, error)
	Create(ctx context.Context, payload C) (*R, error)
	Update(ctx context.Context, id uint64, payload U) (*R, error)
	Delete(ctx context.Context, id uint64) error
}

func paginate[R any](filter types.Filter, items []R, total uint64) *dto.Paginated[R] {
	return &dto.Paginated[R]{
		CurrentPage: filter.Page,
		TotalPages:  filter.TotalPages(total),
		TotalItems:  total,
		Items:       items,
	}
}
