package services

import (
	"context"

	"clinic-registry/internal/dto"
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/types"
	"clinic-registry/pkg/utils"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type ResponsibleService struct {
	responsibleRepository repositories.ResponsibleRepositoryInterface
	logger                *zap.Logger
}

func NewResponsibleService(responsibleRepository repositories.ResponsibleRepositoryInterface, logger *zap.Logger) *ResponsibleService {
	return &ResponsibleService{responsibleRepository: responsibleRepository, logger: logger}
}

func (s *ResponsibleService) List(ctx context.Context, filter types.Filter) (*dto.Paginated[dto.ResponsibleDTO], error) {
	items, total, err := s.responsibleRepository.GetResponsibles(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(filter, items, total), nil
}

func (s *ResponsibleService) Find(ctx context.Context, id uint64) (*dto.ResponsibleDTO, error) {
	return s.responsibleRepository.FindResponsible(ctx, id)
}

func (s *ResponsibleService) Create(ctx context.Context, payload dto.CreateResponsibleDTO) (*dto.ResponsibleDTO, error) {
	payload.Name = utils.NormalizeName(payload.Name)
	if payload.Phone.Valid {
		// Phones are stored digits-only, same rule the importer applies.
		payload.Phone = null.StringFrom(utils.DigitsOnly(payload.Phone.String))
	}

	created, err := s.responsibleRepository.CreateResponsible(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("responsible created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *ResponsibleService) Update(ctx context.Context, id uint64, payload dto.UpdateResponsibleDTO) (*dto.ResponsibleDTO, error) {
	if payload.Name != nil {
		normalized := utils.NormalizeName(*payload.Name)
		payload.Name = &normalized
	}
	if payload.Phone.Valid {
		payload.Phone = null.StringFrom(utils.DigitsOnly(payload.Phone.String))
	}
	return s.responsibleRepository.UpdateResponsible(ctx, id, payload)
}

func (s *ResponsibleService) Delete(ctx context.Context, id uint64) error {
	return s.responsibleRepository.DeleteResponsible(ctx, id)
}
