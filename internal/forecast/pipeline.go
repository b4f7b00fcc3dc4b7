// Package forecast orchestrates a demand-forecast run: load the input
// sheets, generate the projected visit schedule, write the output files,
// and optionally persist the result to Postgres.
package forecast

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sp496/inventory-planning/internal/config"
	"github.com/sp496/inventory-planning/internal/export"
	"github.com/sp496/inventory-planning/internal/model"
	"github.com/sp496/inventory-planning/internal/schedule"
	"github.com/sp496/inventory-planning/internal/tabread"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full forecast pipeline: load → generate → export →
// persist (when cfg.Persist is set; pool may be nil otherwise). now anchors
// the projection horizon so a run is reproducible.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config, now time.Time) (*model.RunSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()

	// Phase 1: Load
	log.Info().
		Str("subjects", cfg.SubjectsPath).
		Str("plans", cfg.PlansPath).
		Msg("loading input sheets")
	loadStart := time.Now()

	subjects, err := tabread.ReadSubjects(cfg.SubjectsPath, log)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	plans, err := tabread.ReadPlans(cfg.PlansPath, log)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	loadDur := time.Since(loadStart)

	log.Info().
		Int("patients", len(subjects.Patients)).
		Int64("patients_rejected", subjects.RowsRejected).
		Int("plan_entries", len(plans.Entries)).
		Int64("plans_rejected", plans.RowsRejected).
		Dur("duration", loadDur).
		Msg("load complete")

	// Phase 2: Generate
	genStart := time.Now()
	h := schedule.Horizon{Now: now, MonthsAhead: cfg.MonthsAhead}
	f := schedule.Generate(subjects.Patients, plans.Entries, h, NewLogSink(log))
	genDur := time.Since(genStart)

	stats := f.Stats()
	log.Info().
		Int("visits", stats.TotalVisits).
		Int("unique_patients", stats.UniquePatients).
		Int("duplicates_dropped", f.DuplicatesDropped).
		Int("unmatched_patients", len(f.Unmatched)).
		Str("first_visit", stats.FirstVisitDate).
		Str("last_visit", stats.LastVisitDate).
		Dur("duration", genDur).
		Msg("projection complete")

	// Phase 3: Export
	exportStart := time.Now()
	if err := writeOutputs(cfg, f); err != nil {
		return nil, &PipelineError{Phase: "export", Err: err}
	}
	exportDur := time.Since(exportStart)
	log.Info().Str("out_dir", cfg.OutDir).Dur("duration", exportDur).Msg("export complete")

	// Phase 4: Persist (optional)
	var persisted int64
	var persistDur time.Duration
	if cfg.Persist {
		persistStart := time.Now()
		persisted, err = SaveRun(ctx, pool, log, runID, cfg.MonthsAhead, f)
		if err != nil {
			return nil, &PipelineError{Phase: "persist", Err: err}
		}
		persistDur = time.Since(persistStart)
	}

	summary := &model.RunSummary{
		RunID:             runID.String(),
		MonthsAhead:       cfg.MonthsAhead,
		PatientsRead:      len(subjects.Patients),
		PatientsRejected:  subjects.RowsRejected,
		PlansRead:         len(plans.Entries),
		PlansRejected:     plans.RowsRejected,
		PatientsSkipped:   len(f.Unmatched),
		VisitsGenerated:   len(f.Visits),
		DuplicatesDropped: f.DuplicatesDropped,
		RowsPersisted:     persisted,
		DurationLoad:      loadDur,
		DurationGenerate:  genDur,
		DurationExport:    exportDur,
		DurationPersist:   persistDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Str("run_id", summary.RunID).
		Int("visits", summary.VisitsGenerated).
		Int("patients_skipped", summary.PatientsSkipped).
		Int64("rows_persisted", summary.RowsPersisted).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("forecast pipeline complete")

	return summary, nil
}

func writeOutputs(cfg *config.Config, f *schedule.Forecast) error {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	out := func(name string) string { return filepath.Join(cfg.OutDir, name) }

	if cfg.Format == config.FormatCSV || cfg.Format == config.FormatBoth {
		if err := export.WriteDemandCSV(out("inventory_demand.csv"), f.Visits); err != nil {
			return err
		}
	}
	if cfg.Format == config.FormatParquet || cfg.Format == config.FormatBoth {
		if err := export.WriteDemandParquet(out("inventory_demand.parquet"), f.Visits); err != nil {
			return err
		}
	}
	if err := export.WriteDrugSummaryCSV(out("summary_by_drug.csv"), f.DrugSummary()); err != nil {
		return err
	}
	return export.WriteMonthlySummaryCSV(out("summary_by_month.csv"), f.MonthlyDemand())
}
