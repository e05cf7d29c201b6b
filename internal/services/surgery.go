package services

import (
	"context"

	"clinic-registry/internal/dto"
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/types"
	"clinic-registry/pkg/utils"

	"go.uber.org/zap"
)

type SurgeryService struct {
	surgeryRepository repositories.SurgeryRepositoryInterface
	logger            *zap.Logger
}

func NewSurgeryService(surgeryRepository repositories.SurgeryRepositoryInterface, logger *zap.Logger) *SurgeryService {
	return &SurgeryService{surgeryRepository: surgeryRepository, logger: logger}
}

func (s *SurgeryService) List(ctx context.Context, filter types.Filter) (*dto.Paginated[dto.SurgeryDTO], error) {
	items, total, err := s.surgeryRepository.GetSurgeries(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(filter, items, total), nil
}

func (s *SurgeryService) Find(ctx context.Context, id uint64) (*dto.SurgeryDTO, error) {
	return s.surgeryRepository.FindSurgery(ctx, id)
}

func (s *SurgeryService) Create(ctx context.Context, payload dto.CreateSurgeryDTO) (*dto.SurgeryDTO, error) {
	payload.Name = utils.NormalizeName(payload.Name)

	created, err := s.surgeryRepository.CreateSurgery(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("surgery created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *SurgeryService) Update(ctx context.Context, id uint64, payload dto.UpdateSurgeryDTO) (*dto.SurgeryDTO, error) {
	if payload.Name != nil {
		normalized := utils.NormalizeName(*payload.Name)
		payload.Name = &normalized
	}
	return s.surgeryRepository.UpdateSurgery(ctx, id, payload)
}

func (s *SurgeryService) Delete(ctx context.Context, id uint64) error {
	return s.surgeryRepository.DeleteSurgery(ctx, id)
}
