package model

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO calendar-date format used everywhere a projected
// visit date is rendered: output files, the dedup key, and the DB date column.
const DateLayout = "2006-01-02"

// ProjectedVisit is one forecast row: a single future dispensing visit for
// one patient and one drug.
type ProjectedVisit struct {
	Protocol      string
	SubjectNumber string
	SiteID        string
	Depot         string
	Country       string
	Status        string
	Treatment     string
	TPC           string
	Drug          string
	Quantity      int64
	Date          time.Time
	Label         string
	Cycle         int
	Day           int
}

// DateString renders the projected date as an ISO calendar date.
func (v *ProjectedVisit) DateString() string {
	return v.Date.Format(DateLayout)
}

// VisitKey identifies a visit for deduplication. No two rows of a forecast
// share the same key; later duplicates are dropped, first occurrence kept.
type VisitKey struct {
	SubjectNumber string
	Date          string
	Drug          string
}

// Key returns the dedup key for this visit.
func (v *ProjectedVisit) Key() VisitKey {
	return VisitKey{SubjectNumber: v.SubjectNumber, Date: v.DateString(), Drug: v.Drug}
}

// VisitColumns returns the ordered column names for COPY into
// forecast.projected_visits.
func VisitColumns() []string {
	return []string{
		"run_id",
		"protocol",
		"subject_number",
		"site_id",
		"depot",
		"country",
		"subject_status",
		"treatment",
		"tpc",
		"drug",
		"quantity",
		"visit_date",
		"visit_label",
		"cycle",
		"cycle_day",
	}
}

// CopyValues returns the row values in VisitColumns() order for the given
// forecast run, suitable for pgx CopyFromSource.
func (v *ProjectedVisit) CopyValues(runID uuid.UUID) []any {
	return []any{
		runID,
		v.Protocol,
		v.SubjectNumber,
		nilIfEmpty(v.SiteID),
		nilIfEmpty(v.Depot),
		nilIfEmpty(v.Country),
		nilIfEmpty(v.Status),
		nilIfEmpty(v.Treatment),
		nilIfEmpty(v.TPC),
		v.Drug,
		v.Quantity,
		v.Date,
		v.Label,
		v.Cycle,
		v.Day,
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
