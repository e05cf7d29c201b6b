package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"clinic-registry/internal/dto"
	"clinic-registry/internal/entities"
	infradb "clinic-registry/internal/infrastructure/db"
	apperrors "clinic-registry/pkg/errors"
	"clinic-registry/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dbSurgery struct {
	ID          uint64
	Name        string
	SpecialtyID sql.NullInt64
	Active      bool
}

func (db *dbSurgery) ToDTO() dto.SurgeryDTO {
	return dto.SurgeryDTO{
		ID:          db.ID,
		Name:        db.Name,
		SpecialtyID: null.NewInt(int(db.SpecialtyID.Int64), db.SpecialtyID.Valid),
		Active:      db.Active,
	}
}

const (
	surgeryTable  = "surgeries"
	surgeryFields = "id, name, specialty_id, active"
)

type SurgeryRepositoryInterface interface {
	GetSurgeries(ctx context.Context, filter types.Filter) ([]dto.SurgeryDTO, uint64, error)
	FindSurgery(ctx context.Context, id uint64) (*dto.SurgeryDTO, error)
	CreateSurgery(ctx context.Context, payload dto.CreateSurgeryDTO) (*dto.SurgeryDTO, error)
	UpdateSurgery(ctx context.Context, id uint64, payload dto.UpdateSurgeryDTO) (*dto.SurgeryDTO, error)
	DeleteSurgery(ctx context.Context, id uint64) error
	ListNames(ctx context.Context) ([]NameRef, error)
	BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Surgery) (int, error)
}

type surgeryRepository struct{ storage *pgxpool.Pool }

func NewSurgeryRepository(storage *pgxpool.Pool) SurgeryRepositoryInterface {
	return &surgeryRepository{storage: storage}
}

func (r *surgeryRepository) GetSurgeries(ctx context.Context, filter types.Filter) ([]dto.SurgeryDTO, uint64, error) {
	countQuery, countArgs, err := infradb.ApplySearch(
		infradb.Psql.Select("COUNT(*)").From(surgeryTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.SurgeryDTO{}, 0, nil
	}

	query, args, err := infradb.ApplyListParams(
		infradb.Psql.Select(strings.Split(surgeryFields, ", ")...).From(surgeryTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	surgeries := make([]dto.SurgeryDTO, 0)
	for rows.Next() {
		var dbRow dbSurgery
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.SpecialtyID, &dbRow.Active); err != nil {
			return nil, 0, err
		}
		surgeries = append(surgeries, dbRow.ToDTO())
	}
	return surgeries, total, rows.Err()
}

func (r *surgeryRepository) FindSurgery(ctx context.Context, id uint64) (*dto.SurgeryDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", surgeryFields, surgeryTable)
	var dbRow dbSurgery
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.SpecialtyID, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	surgeryDTO := dbRow.ToDTO()
	return &surgeryDTO, nil
}

func (r *surgeryRepository) CreateSurgery(ctx context.Context, payload dto.CreateSurgeryDTO) (*dto.SurgeryDTO, error) {
	active := true
	if payload.Active.Valid {
		active = payload.Active.Bool
	}

	query := fmt.Sprintf("INSERT INTO %s (name, specialty_id, active) VALUES ($1, $2, $3) RETURNING %s",
		surgeryTable, surgeryFields)
	var dbRow dbSurgery
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.SpecialtyID.Ptr(), active).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.SpecialtyID, &dbRow.Active)
	if err != nil {
		return nil, mapInsertError(err)
	}
	surgeryDTO := dbRow.ToDTO()
	return &surgeryDTO, nil
}

func (r *surgeryRepository) UpdateSurgery(ctx context.Context, id uint64, payload dto.UpdateSurgeryDTO) (*dto.SurgeryDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.SpecialtyID.Valid {
		setClauses = append(setClauses, fmt.Sprintf("specialty_id = $%d", argId))
		args = append(args, payload.SpecialtyID.Int)
		argId++
	}
	if payload.Active != nil {
		setClauses = append(setClauses, fmt.Sprintf("active = $%d", argId))
		args = append(args, *payload.Active)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindSurgery(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		surgeryTable, strings.Join(setClauses, ", "), argId, surgeryFields)
	args = append(args, id)

	var dbRow dbSurgery
	err := r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Name, &dbRow.SpecialtyID, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapInsertError(err)
	}
	surgeryDTO := dbRow.ToDTO()
	return &surgeryDTO, nil
}

func (r *surgeryRepository) DeleteSurgery(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", surgeryTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *surgeryRepository) ListNames(ctx context.Context) ([]NameRef, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", surgeryTable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []NameRef
	for rows.Next() {
		var ref NameRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *surgeryRepository) BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Surgery) (int, error) {
	inserted := 0
	for _, row := range rows {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (name, specialty_id, active) VALUES ($1, $2, $3)", surgeryTable),
			row.Name, row.SpecialtyID, row.Active)
		if err != nil {
			return 0, mapInsertError(err)
		}
		inserted++
	}
	return inserted, nil
}
