package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sp496/inventory-planning/internal/model"
)

// VisitSource implements pgx.CopyFromSource over a channel of projected
// visits, stamping each row with the forecast run id. The channel provides
// backpressure between the generator and the COPY writer.
type VisitSource struct {
	runID   uuid.UUID
	ch      <-chan *model.ProjectedVisit
	current *model.ProjectedVisit
	err     error
}

// NewVisitSource creates a CopyFromSource backed by a channel; every row is
// tagged with runID.
func NewVisitSource(runID uuid.UUID, ch <-chan *model.ProjectedVisit) *VisitSource {
	return &VisitSource{runID: runID, ch: ch}
}

// Next advances to the next visit. Returns false when the channel is closed.
func (s *VisitSource) Next() bool {
	v, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = v
	return true
}

// Values returns the current visit's values in COPY column order.
func (s *VisitSource) Values() ([]any, error) {
	return s.current.CopyValues(s.runID), nil
}

// Err returns any error encountered during iteration.
func (s *VisitSource) Err() error {
	return s.err
}

var _ pgx.CopyFromSource = (*VisitSource)(nil)
