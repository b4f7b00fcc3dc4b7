package forecast

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/sp496/inventory-planning/internal/db"
	"github.com/sp496/inventory-planning/internal/model"
	"github.com/sp496/inventory-planning/internal/schedule"
	embedsql "github.com/sp496/inventory-planning/internal/sql"
)

// SaveRun persists a forecast: a run row plus all projected visits, loaded
// through the COPY protocol. On a COPY failure the run row is removed so no
// half-written run is left behind.
func SaveRun(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID, monthsAhead int, f *schedule.Forecast) (int64, error) {
	if _, err := pool.Exec(ctx, embedsql.InsertRun, runID, monthsAhead); err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	ch := make(chan *model.ProjectedVisit, 256)
	go func() {
		defer close(ch)
		for i := range f.Visits {
			select {
			case ch <- &f.Visits[i]:
			case <-ctx.Done():
				return
			}
		}
	}()

	source := db.NewVisitSource(runID, ch)
	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"forecast", "projected_visits"},
		model.VisitColumns(),
		source,
	)
	if err != nil {
		if _, delErr := pool.Exec(ctx, embedsql.DeleteRun, runID); delErr != nil {
			log.Warn().Err(delErr).Str("run_id", runID.String()).Msg("failed to remove incomplete run")
		}
		return 0, fmt.Errorf("copy visits: %w", err)
	}

	stats := f.Stats()
	if _, err := pool.Exec(ctx, embedsql.UpdateRunCounts, runID, stats.TotalVisits, stats.UniquePatients); err != nil {
		return copied, fmt.Errorf("update run counts: %w", err)
	}

	log.Info().
		Str("run_id", runID.String()).
		Int64("rows_copied", copied).
		Msg("forecast persisted")

	return copied, nil
}

// DemandByDrug reads the per-drug rollup of a persisted run.
func DemandByDrug(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID) ([]model.DrugSummaryRow, error) {
	rows, err := pool.Query(ctx, embedsql.DemandByDrug, runID)
	if err != nil {
		return nil, fmt.Errorf("query demand by drug: %w", err)
	}
	defer rows.Close()

	var out []model.DrugSummaryRow
	for rows.Next() {
		var r model.DrugSummaryRow
		var visits, patients int64
		if err := rows.Scan(&r.Drug, &visits, &r.TotalQuantity, &patients); err != nil {
			return nil, fmt.Errorf("scan demand row: %w", err)
		}
		r.Visits = int(visits)
		r.Patients = int(patients)
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRunVisits returns the number of persisted visits for a run.
func CountRunVisits(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID) (int64, error) {
	var n int64
	if err := pool.QueryRow(ctx, embedsql.CountRunVisits, runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count run visits: %w", err)
	}
	return n, nil
}
