package importer

import (
	"context"

	"clinic-registry/internal/entities"
	"clinic-registry/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Target names an entity table the importer reads names from or writes
// batches to.
type Target string

const (
	TargetSpecialties  Target = "specialties"
	TargetPlans        Target = "plans"
	TargetResponsibles Target = "responsibles"
	TargetDoctors      Target = "doctors"
	TargetSurgeries    Target = "surgeries"
)

// Store is the importer's view of the entity store: bulk name reads for
// resolution and duplicate detection, and per-sheet batch inserts. Each
// Insert call commits (or rolls back) one sheet's batch atomically.
type Store interface {
	ListNames(ctx context.Context, target Target) ([]repositories.NameRef, error)
	InsertSpecialties(ctx context.Context, rows []entities.Specialty) (int, error)
	InsertPlans(ctx context.Context, rows []entities.Plan) (int, error)
	InsertResponsibles(ctx context.Context, rows []entities.Responsible) (int, error)
	InsertDoctors(ctx context.Context, rows []entities.Doctor) (int, error)
	InsertSurgeries(ctx context.Context, rows []entities.Surgery) (int, error)
}

// SheetSummary is one sheet's outcome in the run report.
type SheetSummary struct {
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

type Summary struct {
	RunID  string                  `json:"run_id"`
	Sheets map[string]SheetSummary `json:"sheets"`
}

// Orchestrator drives the whole import: read, normalize, resolve and persist
// each sheet in the fixed dependency order. Deliberately single-threaded:
// doctor and surgery resolution needs the specialty batch already committed.
type Orchestrator struct {
	store  Store
	logger *zap.Logger
}

func NewOrchestrator(store Store, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{store: store, logger: logger}
}

// Run imports the workbook at path. A failed sheet (missing column, rolled
// back batch) is reported in the summary and never aborts the other sheets;
// only a workbook that cannot be opened at all fails the run.
func (o *Orchestrator) Run(ctx context.Context, path string) (*Summary, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	summary := &Summary{
		RunID:  uuid.New().String(),
		Sheets: make(map[string]SheetSummary, len(SheetOrder)),
	}
	log := o.logger.With(zap.String("run_id", summary.RunID), zap.String("workbook", path))
	log.Info("import run started")

	for _, sheet := range SheetOrder {
		result := o.processSheet(ctx, wb, sheet, log)
		summary.Sheets[sheet] = result
		if result.Error != "" {
			log.Warn("sheet failed",
				zap.String("sheet", sheet),
				zap.String("error", result.Error))
			continue
		}
		log.Info("sheet imported",
			zap.String("sheet", sheet),
			zap.Int("inserted", result.Inserted),
			zap.Int("skipped", result.Skipped))
	}

	log.Info("import run finished")
	return summary, nil
}

func (o *Orchestrator) processSheet(ctx context.Context, wb *Workbook, sheet string, log *zap.Logger) SheetSummary {
	rows, err := wb.ReadSheet(sheet, HeaderOffset, sheetColumns[sheet])
	if err != nil {
		return SheetSummary{Error: err.Error()}
	}
	NormalizeRows(rows)

	switch sheet {
	case SheetSpecialties:
		return persistBatch(ctx, o, sheet, rows, TargetSpecialties, log,
			func(rowNum int, row Row) (entities.Specialty, error) {
				return buildSpecialty(sheet, rowNum, row)
			},
			o.store.InsertSpecialties)

	case SheetPlans:
		return persistBatch(ctx, o, sheet, rows, TargetPlans, log,
			func(rowNum int, row Row) (entities.Plan, error) {
				return buildPlan(sheet, rowNum, row)
			},
			o.store.InsertPlans)

	case SheetResponsibles:
		return persistBatch(ctx, o, sheet, rows, TargetResponsibles, log,
			func(rowNum int, row Row) (entities.Responsible, error) {
				return buildResponsible(sheet, rowNum, row)
			},
			o.store.InsertResponsibles)

	case SheetDoctors:
		refs, err := o.resolveSpecialties(ctx, rows)
		if err != nil {
			return SheetSummary{Error: err.Error()}
		}
		return persistBatch(ctx, o, sheet, rows, TargetDoctors, log,
			func(rowNum int, row Row) (entities.Doctor, error) {
				return buildDoctor(sheet, rowNum, row, refs[rowNum-1])
			},
			o.store.InsertDoctors)

	case SheetSurgeries:
		refs, err := o.resolveSpecialties(ctx, rows)
		if err != nil {
			return SheetSummary{Error: err.Error()}
		}
		return persistBatch(ctx, o, sheet, rows, TargetSurgeries, log,
			func(rowNum int, row Row) (entities.Surgery, error) {
				return buildSurgery(sheet, rowNum, row, refs[rowNum-1])
			},
			o.store.InsertSurgeries)
	}

	return SheetSummary{Error: "unrecognized sheet: " + sheet}
}

// resolveSpecialties swaps the textual specialty column for resolved ids.
// One bulk name read; unresolved references stay nil and import anyway.
func (o *Orchestrator) resolveSpecialties(ctx context.Context, rows []Row) ([]*uint64, error) {
	refs, err := o.store.ListNames(ctx, TargetSpecialties)
	if err != nil {
		return nil, err
	}
	return ResolveColumn(rows, KeySpecialty, BuildNameIndex(refs)), nil
}

// persistBatch is the shared prepare-then-commit tail of every sheet:
// malformed and duplicate-name rows are soft-skipped one by one, then the
// surviving batch is committed atomically. Import is insert-only; a name
// already present in the target table is a skip, never an update.
func persistBatch[T any](
	ctx context.Context,
	o *Orchestrator,
	sheet string,
	rows []Row,
	target Target,
	log *zap.Logger,
	build func(rowNum int, row Row) (T, error),
	insert func(ctx context.Context, batch []T) (int, error),
) SheetSummary {
	existingRefs, err := o.store.ListNames(ctx, target)
	if err != nil {
		return SheetSummary{Error: err.Error()}
	}
	existing := BuildNameIndex(existingRefs)

	batch := make([]T, 0, len(rows))
	skipped := 0
	seen := make(map[string]struct{}, len(rows))

	for i, row := range rows {
		rowNum := i + 1

		if name, ok := row[KeyName]; ok {
			if existing.Contains(name) {
				log.Warn("skipping row: name already exists",
					zap.String("sheet", sheet), zap.Int("row", rowNum), zap.String("name", name))
				skipped++
				continue
			}
			if _, dup := seen[name]; dup {
				log.Warn("skipping row: duplicate name within sheet",
					zap.String("sheet", sheet), zap.Int("row", rowNum), zap.String("name", name))
				skipped++
				continue
			}
		}

		item, err := build(rowNum, row)
		if err != nil {
			log.Warn("skipping row", zap.String("sheet", sheet), zap.Error(err))
			skipped++
			continue
		}
		if name, ok := row[KeyName]; ok {
			seen[name] = struct{}{}
		}
		batch = append(batch, item)
	}

	if len(batch) == 0 {
		return SheetSummary{Skipped: skipped}
	}

	inserted, err := insert(ctx, batch)
	if err != nil {
		return SheetSummary{Skipped: skipped, Error: (&BatchCommitError{Sheet: sheet, Err: err}).Error()}
	}
	return SheetSummary{Inserted: inserted, Skipped: skipped}
}
