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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NameRef is one row of the bulk name→id read used by reference resolution.
type NameRef struct {
	ID   uint64
	Name string
}

type dbSpecialty struct {
	ID          uint64
	Name        string
	Description sql.NullString
	Active      bool
}

func (db *dbSpecialty) ToDTO() dto.SpecialtyDTO {
	return dto.SpecialtyDTO{
		ID:          db.ID,
		Name:        db.Name,
		Description: null.NewString(db.Description.String, db.Description.Valid),
		Active:      db.Active,
	}
}

const (
	specialtyTable  = "specialties"
	specialtyFields = "id, name, description, active"
)

type SpecialtyRepositoryInterface interface {
	GetSpecialties(ctx context.Context, filter types.Filter) ([]dto.SpecialtyDTO, uint64, error)
	FindSpecialty(ctx context.Context, id uint64) (*dto.SpecialtyDTO, error)
	CreateSpecialty(ctx context.Context, payload dto.CreateSpecialtyDTO) (*dto.SpecialtyDTO, error)
	UpdateSpecialty(ctx context.Context, id uint64, payload dto.UpdateSpecialtyDTO) (*dto.SpecialtyDTO, error)
	DeleteSpecialty(ctx context.Context, id uint64) error
	ListNames(ctx context.Context) ([]NameRef, error)
	BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Specialty) (int, error)
}

type specialtyRepository struct{ storage *pgxpool.Pool }

func NewSpecialtyRepository(storage *pgxpool.Pool) SpecialtyRepositoryInterface {
	return &specialtyRepository{storage: storage}
}

func (r *specialtyRepository) GetSpecialties(ctx context.Context, filter types.Filter) ([]dto.SpecialtyDTO, uint64, error) {
	countQuery, countArgs, err := infradb.ApplySearch(
		infradb.Psql.Select("COUNT(*)").From(specialtyTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.SpecialtyDTO{}, 0, nil
	}

	query, args, err := infradb.ApplyListParams(
		infradb.Psql.Select(strings.Split(specialtyFields, ", ")...).From(specialtyTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	specialties := make([]dto.SpecialtyDTO, 0)
	for rows.Next() {
		var dbRow dbSpecialty
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Active); err != nil {
			return nil, 0, err
		}
		specialties = append(specialties, dbRow.ToDTO())
	}
	return specialties, total, rows.Err()
}

func (r *specialtyRepository) FindSpecialty(ctx context.Context, id uint64) (*dto.SpecialtyDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", specialtyFields, specialtyTable)
	var dbRow dbSpecialty
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	specialtyDTO := dbRow.ToDTO()
	return &specialtyDTO, nil
}

func (r *specialtyRepository) CreateSpecialty(ctx context.Context, payload dto.CreateSpecialtyDTO) (*dto.SpecialtyDTO, error) {
	active := true
	if payload.Active.Valid {
		active = payload.Active.Bool
	}

	query := fmt.Sprintf("INSERT INTO %s (name, description, active) VALUES ($1, $2, $3) RETURNING %s",
		specialtyTable, specialtyFields)
	var dbRow dbSpecialty
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.Description.Ptr(), active).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Active)
	if err != nil {
		return nil, mapInsertError(err)
	}
	specialtyDTO := dbRow.ToDTO()
	return &specialtyDTO, nil
}

func (r *specialtyRepository) UpdateSpecialty(ctx context.Context, id uint64, payload dto.UpdateSpecialtyDTO) (*dto.SpecialtyDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.Description.Valid {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argId))
		args = append(args, payload.Description.String)
		argId++
	}
	if payload.Active != nil {
		setClauses = append(setClauses, fmt.Sprintf("active = $%d", argId))
		args = append(args, *payload.Active)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindSpecialty(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		specialtyTable, strings.Join(setClauses, ", "), argId, specialtyFields)
	args = append(args, id)

	var dbRow dbSpecialty
	err := r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Name, &dbRow.Description, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapInsertError(err)
	}
	specialtyDTO := dbRow.ToDTO()
	return &specialtyDTO, nil
}

// DeleteSpecialty removes the specialty; doctors and surgeries referencing it
// keep their rows with specialty_id cleared (ON DELETE SET NULL).
func (r *specialtyRepository) DeleteSpecialty(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", specialtyTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListNames is the one bulk read per sheet the resolver depends on.
func (r *specialtyRepository) ListNames(ctx context.Context) ([]NameRef, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", specialtyTable))
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

func (r *specialtyRepository) BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Specialty) (int, error) {
	inserted := 0
	for _, row := range rows {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (name, description, active) VALUES ($1, $2, $3)", specialtyTable),
			row.Name, row.Description, row.Active)
		if err != nil {
			return 0, mapInsertError(err)
		}
		inserted++
	}
	return inserted, nil
}

// mapInsertError translates constraint violations into app sentinels:
// 23505 (unique) → conflict, 23503 (foreign key) → bad request.
func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", apperrors.ErrBadRequest, pgErr.ConstraintName)
		}
	}
	return err
}
