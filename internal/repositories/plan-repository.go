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

type dbPlan struct {
	ID           uint64
	Name         string
	Code         sql.NullString
	PatientCount sql.NullInt32
	Active       bool
}

func (db *dbPlan) ToDTO() dto.PlanDTO {
	return dto.PlanDTO{
		ID:           db.ID,
		Name:         db.Name,
		Code:         null.NewString(db.Code.String, db.Code.Valid),
		PatientCount: null.NewInt(int(db.PatientCount.Int32), db.PatientCount.Valid),
		Active:       db.Active,
	}
}

const (
	planTable  = "plans"
	planFields = "id, name, code, patient_count, active"
)

type PlanRepositoryInterface interface {
	GetPlans(ctx context.Context, filter types.Filter) ([]dto.PlanDTO, uint64, error)
	FindPlan(ctx context.Context, id uint64) (*dto.PlanDTO, error)
	CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) (*dto.PlanDTO, error)
	UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) (*dto.PlanDTO, error)
	DeletePlan(ctx context.Context, id uint64) error
	ListNames(ctx context.Context) ([]NameRef, error)
	BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Plan) (int, error)
}

type planRepository struct{ storage *pgxpool.Pool }

func NewPlanRepository(storage *pgxpool.Pool) PlanRepositoryInterface {
	return &planRepository{storage: storage}
}

func (r *planRepository) GetPlans(ctx context.Context, filter types.Filter) ([]dto.PlanDTO, uint64, error) {
	countQuery, countArgs, err := infradb.ApplySearch(
		infradb.Psql.Select("COUNT(*)").From(planTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []dto.PlanDTO{}, 0, nil
	}

	query, args, err := infradb.ApplyListParams(
		infradb.Psql.Select(strings.Split(planFields, ", ")...).From(planTable), filter, "name",
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	plans := make([]dto.PlanDTO, 0)
	for rows.Next() {
		var dbRow dbPlan
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Code, &dbRow.PatientCount, &dbRow.Active); err != nil {
			return nil, 0, err
		}
		plans = append(plans, dbRow.ToDTO())
	}
	return plans, total, rows.Err()
}

func (r *planRepository) FindPlan(ctx context.Context, id uint64) (*dto.PlanDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", planFields, planTable)
	var dbRow dbPlan
	err := r.storage.QueryRow(ctx, query, id).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Code, &dbRow.PatientCount, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	planDTO := dbRow.ToDTO()
	return &planDTO, nil
}

func (r *planRepository) CreatePlan(ctx context.Context, payload dto.CreatePlanDTO) (*dto.PlanDTO, error) {
	active := true
	if payload.Active.Valid {
		active = payload.Active.Bool
	}

	query := fmt.Sprintf("INSERT INTO %s (name, code, patient_count, active) VALUES ($1, $2, $3, $4) RETURNING %s",
		planTable, planFields)
	var dbRow dbPlan
	err := r.storage.QueryRow(ctx, query,
		payload.Name, payload.Code.Ptr(), payload.PatientCount.Ptr(), active).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Code, &dbRow.PatientCount, &dbRow.Active)
	if err != nil {
		return nil, mapInsertError(err)
	}
	planDTO := dbRow.ToDTO()
	return &planDTO, nil
}

func (r *planRepository) UpdatePlan(ctx context.Context, id uint64, payload dto.UpdatePlanDTO) (*dto.PlanDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.Code.Valid {
		setClauses = append(setClauses, fmt.Sprintf("code = $%d", argId))
		args = append(args, payload.Code.String)
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
		return r.FindPlan(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		planTable, strings.Join(setClauses, ", "), argId, planFields)
	args = append(args, id)

	var dbRow dbPlan
	err := r.storage.QueryRow(ctx, query, args...).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Code, &dbRow.PatientCount, &dbRow.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapInsertError(err)
	}
	planDTO := dbRow.ToDTO()
	return &planDTO, nil
}

func (r *planRepository) DeletePlan(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", planTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *planRepository) ListNames(ctx context.Context) ([]NameRef, error) {
	rows, err := r.storage.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s", planTable))
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

func (r *planRepository) BatchInsert(ctx context.Context, tx pgx.Tx, rows []entities.Plan) (int, error) {
	inserted := 0
	for _, row := range rows {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (name, code, patient_count, active) VALUES ($1, $2, $3, $4)", planTable),
			row.Name, row.Code, row.PatientCount, row.Active)
		if err != nil {
			return 0, mapInsertError(err)
		}
		inserted++
	}
	return inserted, nil
}
