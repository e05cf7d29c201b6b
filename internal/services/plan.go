package services

import (
	"context"

	"clinic-registry/internal/dto"
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/types"
	"clinic-registry/pkg/utils"

	"go.uber.org/zap"
)

type PlanService struct {
	planRepository repositories.PlanRepositoryInterface
	logger         *zap.Logger
}

func NewPlanService(planRepository repositories.PlanRepositoryInterface, logger *zap.Logger) *PlanService {
	return &PlanService{planRepository: planRepository, logger: logger}
}

func (s *PlanService) List(ctx context.Context, filter types.Filter) (*dto.Paginated[dto.PlanDTO], error) {
	items, total, err := s.planRepository.GetPlans(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(filter, items, total), nil
}

func (s *PlanService) Find(ctx context.Context, id uint64) (*dto.PlanDTO, error) {
	return s.planRepository.FindPlan(ctx, id)
}

func (s *PlanService) Create(ctx context.Context, payload dto.CreatePlanDTO) (*dto.PlanDTO, error) {
	payload.Name = utils.NormalizeName(payload.Name)

	created, err := s.planRepository.CreatePlan(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("plan created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *PlanService) Update(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) (*dto.PlanDTO, error) {
	if payload.Name != nil {
		normalized := utils.NormalizeName(*payload.Name)
		payload.Name = &normalized
	}
	return s.planRepository.UpdatePlan(ctx, id, payload)
}

func (s *PlanService) Delete(ctx context.Context, id uint64) error {
	return s.planRepository.DeletePlan(ctx, id)
}
