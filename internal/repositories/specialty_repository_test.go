package repositories

import (
	"context"
	"os"
	"testing"

	"clinic-registry/internal/dto"
	"clinic-registry/pkg/database/postgresql"
	apperrors "clinic-registry/pkg/errors"
	"clinic-registry/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool connects to the database named by TEST_DATABASE_URL, applies
// migrations and truncates the registry tables. Tests are skipped when the
// variable is not set.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, postgresql.MigrateUp(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE TABLE surgeries, doctors, responsibles, plans, specialties RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func TestSpecialtyRepositoryRoundTrip(t *testing.T) {
	pool := testPool(t)
	repo := NewSpecialtyRepository(pool)
	ctx := context.Background()

	created, err := repo.CreateSpecialty(ctx, dto.CreateSpecialtyDTO{
		Name:        "cardiologia",
		Description: null.StringFrom("coração"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.Active, "active defaults to true")

	found, err := repo.FindSpecialty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "cardiologia", found.Name)
	assert.Equal(t, "coração", found.Description.String)

	_, err = repo.FindSpecialty(ctx, created.ID+1000)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSpecialtyRepositoryUniqueName(t *testing.T) {
	pool := testPool(t)
	repo := NewSpecialtyRepository(pool)
	ctx := context.Background()

	_, err := repo.CreateSpecialty(ctx, dto.CreateSpecialtyDTO{Name: "cardiologia"})
	require.NoError(t, err)

	_, err = repo.CreateSpecialty(ctx, dto.CreateSpecialtyDTO{Name: "cardiologia"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSpecialtyRepositoryListWithSearch(t *testing.T) {
	pool := testPool(t)
	repo := NewSpecialtyRepository(pool)
	ctx := context.Background()

	for _, name := range []string{"cardiologia", "ortopedia", "neurologia"} {
		_, err := repo.CreateSpecialty(ctx, dto.CreateSpecialtyDTO{Name: name})
		require.NoError(t, err)
	}

	items, total, err := repo.GetSpecialties(ctx, types.Filter{Search: "cardio", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "cardiologia", items[0].Name)

	items, total, err = repo.GetSpecialties(ctx, types.Filter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	assert.Len(t, items, 2)
}

func TestSpecialtyRepositoryUpdateAndDelete(t *testing.T) {
	pool := testPool(t)
	repo := NewSpecialtyRepository(pool)
	ctx := context.Background()

	created, err := repo.CreateSpecialty(ctx, dto.CreateSpecialtyDTO{Name: "cardiologia"})
	require.NoError(t, err)

	name := "cardiologia geral"
	updated, err := repo.UpdateSpecialty(ctx, created.ID, dto.UpdateSpecialtyDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	require.NoError(t, repo.DeleteSpecialty(ctx, created.ID))
	assert.ErrorIs(t, repo.DeleteSpecialty(ctx, created.ID), apperrors.ErrNotFound)
}

func TestSpecialtyDeleteClearsDoctorReference(t *testing.T) {
	pool := testPool(t)
	specialties := NewSpecialtyRepository(pool)
	doctors := NewDoctorRepository(pool)
	ctx := context.Background()

	specialty, err := specialties.CreateSpecialty(ctx, dto.CreateSpecialtyDTO{Name: "cardiologia"})
	require.NoError(t, err)

	doctor, err := doctors.CreateDoctor(ctx, dto.CreateDoctorDTO{
		Name:        "dr. joão",
		Type:        "CLT",
		SpecialtyID: null.IntFrom(int(specialty.ID)),
	})
	require.NoError(t, err)
	require.True(t, doctor.SpecialtyID.Valid)

	require.NoError(t, specialties.DeleteSpecialty(ctx, specialty.ID))

	// The doctor survives with the reference cleared.
	found, err := doctors.FindDoctor(ctx, doctor.ID)
	require.NoError(t, err)
	assert.False(t, found.SpecialtyID.Valid)
}

func TestDoctorCreateWithUnknownSpecialtyFails(t *testing.T) {
	pool := testPool(t)
	doctors := NewDoctorRepository(pool)
	ctx := context.Background()

	_, err := doctors.CreateDoctor(ctx, dto.CreateDoctorDTO{
		Name:        "dr. joão",
		Type:        "CLT",
		SpecialtyID: null.IntFrom(999999),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
