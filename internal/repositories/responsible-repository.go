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

type dbResponsible struct {
	ID           uint64
	Name         string
	Email        sql.NullString
	Phone        sql.NullString
	PatientCount sql.NullInt32
	Active       bool
}

func (db *dbResponsible) ToDTO() dto.ResponsibleDTO {
	return dto.ResponsibleDTO{
		ID:           db.ID,
		Name:         db.Name,
		Email:        null.NewString(db.Email.String, db.Email.Valid),
		Phone:        null.NewString(db.Phone.String, db.Phone.Valid),
		PatientCount: null.NewInt(int(db.PatientCount.Int32), db.PatientCount.Valid),
		Active:       db.Active,
	}
}

const (
	responsibleTable  = "responsibles"
	responsibleFields = "id, name, email, phone, patient_count, active"
)

type ResponsibleRepositoryInterface interface {
	GetResponsibles(ctx context.Context, filter types.Filter) ([]dto.ResponsibleDTO, uint64, error)
	FindResponsible(ctx context.Context, id uint64) (*dto.ResponsibleDTO, error)
	CreateResponsible(ctx context.Context, payload dto.CreateResponsibleDTO) (*dto.ResponsibleDTO, error)
	UpdateResponsible(ctx context.Context, id uint64, payload dto.UpdateResponsibleDTO) (*dto.ResponsibleDTO, error)
	DeleteResponsible(ctx context.Context, id uint64) error
	ListNames(ctx context.Context) ([]NameRef, error)
	BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Responsible) (int, error)
}

type responsibleRepository struct{ storage *pgxpool.Pool }

func NewResponsibleRepository(storage *pgxpool.Pool) ResponsibleRepositoryInterface {
	return &responsibleRepository{storage: storage}
}

func (r *responsibleRepository) GetResponsibles(ctx context.Context, filter types.Filter) ([]dto.ResponsibleDTO, uint64, error) {
	countQuery, countArgs, err := infradb.ApplySearch(
		infradb.Psql.Select("COUNT(*)").From(responsibleTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.ResponsibleDTO{}, 0, nil
	}

	query, args, err := infradb.ApplyListParams(
		infradb.Psql.Select(strings.Split(responsibleFields, ", ")...).From(responsibleTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	responsibles := make([]dto.ResponsibleDTO, 0)
	for rows.Next() {
		var dbRow dbResponsible
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Email, &dbRow.Phone, &dbRow.PatientCount, &dbRow.Active); err != nil {
			return nil, 0, err
		}
		responsibles = append(responsibles, dbRow.ToDTO())
	}
	return responsibles, total, rows.Err()
}

func (r *responsibleRepository) FindResponsible(ctx context.Context, id uint64) (*dto.ResponsibleDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", responsibleFields, responsibleTable)
	var dbRow dbResponsible
	err := r.storage.QueryRow(ctx, query, id).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Email, &dbRow.Phone, &dbRow.PatientCount, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	responsibleDTO := dbRow.ToDTO()
	return &responsibleDTO, nil
}

func (r *responsibleRepository) CreateResponsible(ctx context.Context, payload dto.CreateResponsibleDTO) (*dto.ResponsibleDTO, error) {
	active := true
	if payload.Active.Valid {
		active = payload.Active.Bool
	}

	query := fmt.Sprintf("INSERT INTO %s (name, email, phone, patient_count, active) VALUES ($1, $2, $3, $4, $5) RETURNING %s",
		responsibleTable, responsibleFields)
	var dbRow dbResponsible
	err := r.storage.QueryRow(ctx, query,
		payload.Name, payload.Email.Ptr(), payload.Phone.Ptr(), payload.PatientCount.Ptr(), active).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Email, &dbRow.Phone, &dbRow.PatientCount, &dbRow.Active)
	if err != nil {
		return nil, mapInsertError(err)
	}
	responsibleDTO := dbRow.ToDTO()
	return &responsibleDTO, nil
}

func (r *responsibleRepository) UpdateResponsible(ctx context.Context, id uint64, payload dto.UpdateResponsibleDTO) (*dto.ResponsibleDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.Email.Valid {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argId))
		args = append(args, payload.Email.String)
		argId++
	}
	if payload.Phone.Valid {
		setClauses = append(setClauses, fmt.Sprintf("phone = $%d", argId))
		args = append(args, payload.Phone.String)
		argId++
	}
	if payload.PatientCount.Valid {
		setClauses = append(setClauses, fmt.Sprintf("patient_count = $%d", argId))
		args = append(args, payload.PatientCount.Int)
		argId++
	}
	if payload.Active != nil {
		setClauses = append(setClauses, fmt.Sprintf("active = $%d", argId))
		args = append(args, *payload.Active)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindResponsible(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		responsibleTable, strings.Join(setClauses, ", "), argId, responsibleFields)
	args = append(args, id)

	var dbRow dbResponsible
	err := r.storage.QueryRow(ctx, query, args...).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Email, &dbRow.Phone, &dbRow.PatientCount, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapInsertError(err)
	}
	responsibleDTO := dbRow.ToDTO()
	return &responsibleDTO, nil
}

func (r *responsibleRepository) DeleteResponsible(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", responsibleTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *responsibleRepository) ListNames(ctx context.Context) ([]NameRef, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", responsibleTable))
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

func (r *responsibleRepository) BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Responsible) (int, error) {
	inserted := 0
	for _, row := range rows {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (name, email, phone, patient_count, active) VALUES ($1, $2, $3, $4, $5)", responsibleTable),
			row.Name, row.Email, row.Phone, row.PatientCount, row.Active)
		if err != nil {
			return 0, mapInsertError(err)
		}
		inserted++
	}
	return inserted, nil
}
