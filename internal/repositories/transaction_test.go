package repositories

import (
	"context"
	"testing"

	"clinic-registry/internal/entities"
	apperrors "clinic-registry/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchInsertCommits(t *testing.T) {
	pool := testPool(t)
	repo := NewSpecialtyRepository(pool)
	txm := NewTxManager(pool)
	ctx := context.Background()

	var inserted int
	err := txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = repo.BatchInsert(ctx, tx, []entities.Specialty{
			{Name: "cardiologia", Active: true},
			{Name: "ortopedia", Active: true},
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestBatchInsertRollsBackOnConflict(t *testing.T) {
	pool := testPool(t)
	repo := NewSpecialtyRepository(pool)
	txm := NewTxManager(pool)
	ctx := context.Background()

	err := txm.RunInTransaction(ctx, func(tx pgx.Tx) error {
		_, err := repo.BatchInsert(ctx, tx, []entities.Specialty{
			{Name: "cardiologia", Active: true},
			{Name: "cardiologia", Active: true},
		})
		return err
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)

	// The whole batch rolled back, the first row included.
	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
