package services

import (
	"context"

	"clinic-registry/internal/dto"
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/types"
	"clinic-registry/pkg/utils"

	"go.uber.org/zap"
)

type SpecialtyService struct {
	specialtyRepository repositories.SpecialtyRepositoryInterface
	logger              *zap.Logger
}

func NewSpecialtyService(specialtyRepository repositories.SpecialtyRepositoryInterface, logger *zap.Logger) *SpecialtyService {
	return &SpecialtyService{specialtyRepository: specialtyRepository, logger: logger}
}

func (s *SpecialtyService) List(ctx context.Context, filter types.Filter) (*dto.Paginated[dto.SpecialtyDTO], error) {
	items, total, err := s.specialtyRepository.GetSpecialties(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(filter, items, total), nil
}

func (s *SpecialtyService) Find(ctx context.Context, id uint64) (*dto.SpecialtyDTO, error) {
	return s.specialtyRepository.FindSpecialty(ctx, id)
}

func (s *SpecialtyService) Create(ctx context.Context, payload dto.CreateSpecialtyDTO) (*dto.SpecialtyDTO, error) {
	// Names are stored normalized; the unique constraint and reference
	// resolution both depend on it.
	payload.Name = utils.NormalizeName(payload.Name)

	created, err := s.specialtyRepository.CreateSpecialty(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("specialty created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *SpecialtyService) Update(ctx context.Context, id uint64, payload dto.UpdateSpecialtyDTO) (*dto.SpecialtyDTO, error) {
	if payload.Name != nil {
		normalized := utils.NormalizeName(*payload.Name)
		payload.Name = &normalized
	}
	return s.specialtyRepository.UpdateSpecialty(ctx, id, payload)
}

func (s *SpecialtyService) Delete(ctx context.Context, id uint64) error {
	if err := s.specialtyRepository.DeleteSpecialty(ctx, id); err != nil {
		return err
	}
	// Dependent doctors/surgeries keep their rows, references cleared by the
	// schema's ON DELETE SET NULL.
	s.logger.Info("specialty deleted", zap.Uint64("id", id))
	return nil
}
