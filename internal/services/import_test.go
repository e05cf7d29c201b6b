package services

import (
	"context"
	"testing"

	"clinic-registry/internal/entities"
	"clinic-registry/internal/importer"
	"clinic-registry/internal/repositories"
	apperrors "clinic-registry/pkg/errors"
	"clinic-registry/pkg/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopStore struct{}

func (noopStore) ListNames(context.Context, importer.Target) ([]repositories.NameRef, error) {
	return nil, nil
}
func (noopStore) InsertSpecialties(_ context.Context, rows []entities.Specialty) (int, error) {
	return len(rows), nil
}
func (noopStore) InsertPlans(_ context.Context, rows []entities.Plan) (int, error) {
	return len(rows), nil
}
func (noopStore) InsertResponsibles(_ context.Context, rows []entities.Responsible) (int, error) {
	return len(rows), nil
}
func (noopStore) InsertDoctors(_ context.Context, rows []entities.Doctor) (int, error) {
	return len(rows), nil
}
func (noopStore) InsertSurgeries(_ context.Context, rows []entities.Surgery) (int, error) {
	return len(rows), nil
}

func TestImportServiceRejectsConcurrentRun(t *testing.T) {
	ctx := context.Background()
	locker := lock.NewLocalLocker()
	require.NoError(t, locker.Acquire(ctx))

	service := NewImportService(
		importer.NewOrchestrator(noopStore{}, zap.NewNop()),
		nil,
		locker,
		zap.NewNop(),
	)

	_, err := service.Run(ctx, "whatever.xlsx")
	assert.ErrorIs(t, err, apperrors.ErrImportInProgress)
}

func TestImportServiceReleasesLockAfterFailure(t *testing.T) {
	ctx := context.Background()
	locker := lock.NewLocalLocker()

	service := NewImportService(
		importer.NewOrchestrator(noopStore{}, zap.NewNop()),
		nil,
		locker,
		zap.NewNop(),
	)

	// The workbook does not exist, so the run fails after taking the lock.
	_, err := service.Run(ctx, "does-not-exist.xlsx")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrImportInProgress)

	// The lock must be free again for the next run.
	assert.NoError(t, locker.Acquire(ctx))
}
