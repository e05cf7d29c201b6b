package importer

import (
	"context"
	"fmt"

	"clinic-registry/internal/entities"
	"clinic-registry/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// PgStore adapts the entity repositories to the importer's Store contract.
// Every Insert wraps one sheet's batch in a single transaction, so a
// constraint violation rolls the whole sheet back.
type PgStore struct {
	tx           repositories.TxManagerInterface
	specialties  repositories.SpecialtyRepositoryInterface
	plans        repositories.PlanRepositoryInterface
	responsibles repositories.ResponsibleRepositoryInterface
	doctors      repositories.DoctorRepositoryInterface
	surgeries    repositories.SurgeryRepositoryInterface
}

func NewPgStore(
	tx repositories.TxManagerInterface,
	specialties repositories.SpecialtyRepositoryInterface,
	plans repositories.PlanRepositoryInterface,
	responsibles repositories.ResponsibleRepositoryInterface,
	doctors repositories.DoctorRepositoryInterface,
	surgeries repositories.SurgeryRepositoryInterface,
) *PgStore {
	return &PgStore{
		tx:           tx,
		specialties:  specialties,
		plans:        plans,
		responsibles: responsibles,
		doctors:      doctors,
		surgeries:    surgeries,
	}
}

func (s *PgStore) ListNames(ctx context.Context, target Target) ([]repositories.NameRef, error) {
	switch target {
	case TargetSpecialties:
		return s.specialties.ListNames(ctx)
	case TargetPlans:
		return s.plans.ListNames(ctx)
	case TargetResponsibles:
		return s.responsibles.ListNames(ctx)
	case TargetDoctors:
		return s.doctors.ListNames(ctx)
	case TargetSurgeries:
		return s.surgeries.ListNames(ctx)
	}
	return nil, fmt.Errorf("unknown target %q", target)
}

func (s *PgStore) InsertSpecialties(ctx context.Context, rows []entities.Specialty) (int, error) {
	var inserted int
	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = s.specialties.BatchInsert(ctx, tx, rows)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *PgStore) InsertPlans(ctx context.Context, rows []entities.Plan) (int, error) {
	var inserted int
	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = s.plans.BatchInsert(ctx, tx, rows)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *PgStore) InsertResponsibles(ctx context.Context, rows []entities.Responsible) (int, error) {
	var inserted int
	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = s.responsibles.BatchInsert(ctx, tx, rows)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *PgStore) InsertDoctors(ctx context.Context, rows []entities.Doctor) (int, error) {
	var inserted int
	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = s.doctors.BatchInsert(ctx, tx, rows)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *PgStore) InsertSurgeries(ctx context.Context, rows []entities.Surgery) (int, error) {
	var inserted int
	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		inserted, err = s.surgeries.BatchInsert(ctx, tx, rows)
		return err
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
