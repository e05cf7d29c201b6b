package services

import (
	"context"
	"io"

	"clinic-registry/internal/importer"
	"clinic-registry/pkg/filestorage"
	"clinic-registry/pkg/lock"

	"go.uber.org/zap"
)

// ImportService runs workbook imports. At most one import runs at a time;
// concurrent attempts fail with ErrImportInProgress.
type ImportService struct {
	orchestrator *importer.Orchestrator
	storage      filestorage.FileStorageInterface
	locker       lock.Locker
	logger       *zap.Logger
}

func NewImportService(
	orchestrator *importer.Orchestrator,
	storage filestorage.FileStorageInterface,
	locker lock.Locker,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		orchestrator: orchestrator,
		storage:      storage,
		locker:       locker,
		logger:       logger,
	}
}

// Run imports the workbook at path.
func (s *ImportService) Run(ctx context.Context, path string) (*importer.Summary, error) {
	if err := s.locker.Acquire(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.locker.Release(ctx); err != nil {
			s.logger.Warn("failed to release import lock", zap.Error(err))
		}
	}()

	return s.orchestrator.Run(ctx, path)
}

// RunFromUpload stores the uploaded workbook and imports it. The stored
// copy is kept for auditing.
func (s *ImportService) RunFromUpload(ctx context.Context, file io.Reader, fileName string) (*importer.Summary, error) {
	path, err := s.storage.Save(file, fileName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("workbook uploaded", zap.String("path", path))

	return s.Run(ctx, path)
}
