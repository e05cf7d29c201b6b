package services

import (
	"context"

	"clinic-registry/internal/dto"
	"clinic-registry/internal/repositories"
	"clinic-registry/pkg/types"
	"clinic-registry/pkg/utils"

	"go.uber.org/zap"
)

type DoctorService struct {
	doctorRepository repositories.DoctorRepositoryInterface
	logger           *zap.Logger
}

func NewDoctorService(doctorRepository repositories.DoctorRepositoryInterface, logger *zap.Logger) *DoctorService {
	return &DoctorService{doctorRepository: doctorRepository, logger: logger}
}

func (s *DoctorService) List(ctx context.Context, filter types.Filter) (*dto.Paginated[dto.DoctorDTO], error) {
	items, total, err := s.doctorRepository.GetDoctors(ctx, filter)
	if err != nil {
		return nil, err
	}
	return paginate(filter, items, total), nil
}

func (s *DoctorService) Find(ctx context.Context, id uint64) (*dto.DoctorDTO, error) {
	return s.doctorRepository.FindDoctor(ctx, id)
}

func (s *DoctorService) Create(ctx context.Context, payload dto.CreateDoctorDTO) (*dto.DoctorDTO, error) {
	payload.Name = utils.NormalizeName(payload.Name)

	created, err := s.doctorRepository.CreateDoctor(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("doctor created", zap.Uint64("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *DoctorService) Update(ctx context.Context, id uint64, payload dto.UpdateDoctorDTO) (*dto.DoctorDTO, error) {
	if payload.Name != nil {
		normalized := utils.NormalizeName(*payload.Name)
		payload.Name = &normalized
	}
	return s.doctorRepository.UpdateDoctor(ctx, id, payload)
}

func (s *DoctorService) Delete(ctx context.Context, id uint64) error {
	return s.doctorRepository.DeleteDoctor(ctx, id)
}
