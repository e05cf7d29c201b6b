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

type dbDoctor struct {
	ID           uint64
	Name         string
	Type         string
	PatientCount sql.NullInt32
	SpecialtyID  sql.NullInt64
	Active       bool
}

func (db *dbDoctor) ToDTO() dto.DoctorDTO {
	return dto.DoctorDTO{
		ID:           db.ID,
		Name:         db.Name,
		Type:         db.Type,
		PatientCount: null.NewInt(int(db.PatientCount.Int32), db.PatientCount.Valid),
		SpecialtyID:  null.NewInt(int(db.SpecialtyID.Int64), db.SpecialtyID.Valid),
		Active:       db.Active,
	}
}

const (
	doctorTable  = "doctors"
	doctorFields = "id, name, type, patient_count, specialty_id, active"
)

type DoctorRepositoryInterface interface {
	GetDoctors(ctx context.Context, filter types.Filter) ([]dto.DoctorDTO, uint64, error)
	FindDoctor(ctx context.Context, id uint64) (*dto.DoctorDTO, error)
	CreateDoctor(ctx context.Context, payload dto.CreateDoctorDTO) (*dto.DoctorDTO, error)
	UpdateDoctor(ctx context.Context, id uint64, payload dto.UpdateDoctorDTO) (*dto.DoctorDTO, error)
	DeleteDoctor(ctx context.Context, id uint64) error
	ListNames(ctx context.Context) ([]NameRef, error)
	BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Doctor) (int, error)
}

type doctorRepository struct{ storage *pgxpool.Pool }

func NewDoctorRepository(storage *pgxpool.Pool) DoctorRepositoryInterface {
	return &doctorRepository{storage: storage}
}

func (r *doctorRepository) GetDoctors(ctx context.Context, filter types.Filter) ([]dto.DoctorDTO, uint64, error) {
	countQuery, countArgs, err := infradb.ApplySearch(
		infradb.Psql.Select("COUNT(*)").From(doctorTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.DoctorDTO{}, 0, nil
	}

	query, args, err := infradb.ApplyListParams(
		infradb.Psql.Select(strings.Split(doctorFields, ", ")...).From(doctorTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	doctors := make([]dto.DoctorDTO, 0)
	for rows.Next() {
		var dbRow dbDoctor
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Type, &dbRow.PatientCount, &dbRow.SpecialtyID, &dbRow.Active); err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, dbRow.ToDTO())
	}
	return doctors, total, rows.Err()
}

func (r *doctorRepository) FindDoctor(ctx context.Context, id uint64) (*dto.DoctorDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", doctorFields, doctorTable)
	var dbRow dbDoctor
	err := r.storage.QueryRow(ctx, query, id).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Type, &dbRow.PatientCount, &dbRow.SpecialtyID, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	doctorDTO := dbRow.ToDTO()
	return &doctorDTO, nil
}

func (r *doctorRepository) CreateDoctor(ctx context.Context, payload dto.CreateDoctorDTO) (*dto.DoctorDTO, error) {
	active := true
	if payload.Active.Valid {
		active = payload.Active.Bool
	}

	query := fmt.Sprintf("INSERT INTO %s (name, type, patient_count, specialty_id, active) VALUES ($1, $2, $3, $4, $5) RETURNING %s",
		doctorTable, doctorFields)
	var dbRow dbDoctor
	err := r.storage.QueryRow(ctx, query,
		payload.Name, payload.Type, payload.PatientCount.Ptr(), payload.SpecialtyID.Ptr(), active).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Type, &dbRow.PatientCount, &dbRow.SpecialtyID, &dbRow.Active)
	if err != nil {
		return nil, mapInsertError(err)
	}
	doctorDTO := dbRow.ToDTO()
	return &doctorDTO, nil
}

func (r *doctorRepository) UpdateDoctor(ctx context.Context, id uint64, payload dto.UpdateDoctorDTO) (*dto.DoctorDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.Type != nil {
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", argId))
		args = append(args, *payload.Type)
		argId++
	}
	if payload.PatientCount.Valid {
		setClauses = append(setClauses, fmt.Sprintf("patient_count = $%d", argId))
		args = append(args, payload.PatientCount.Int)
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
		return r.FindDoctor(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		doctorTable, strings.Join(setClauses, ", "), argId, doctorFields)
	args = append(args, id)

	var dbRow dbDoctor
	err := r.storage.QueryRow(ctx, query, args...).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Type, &dbRow.PatientCount, &dbRow.SpecialtyID, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapInsertError(err)
	}
	doctorDTO := dbRow.ToDTO()
	return &doctorDTO, nil
}

func (r *doctorRepository) DeleteDoctor(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", doctorTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *doctorRepository) ListNames(ctx context.Context) ([]NameRef, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", doctorTable))
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

func (r *doctorRepository) BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Doctor) (int, error) {
	inserted := 0
	for _, row := range rows {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (name, type, patient_count, specialty_id, active) VALUES ($1, $2, $3, $4, $5)", doctorTable),
			row.Name, row.Type, row.PatientCount, row.SpecialtyID, row.Active)
		if err != nil {
			return 0, mapInsertError(err)
		}
		inserted++
	}
	return inserted, nil
}
