package model

import "time"

// ForecastStats are the aggregate statistics over one forecast result set.
// Maps are keyed by the raw drug/country strings from the input.
type ForecastStats struct {
	TotalVisits     int
	UniquePatients  int
	VisitsByDrug    map[string]int
	QuantityByDrug  map[string]int64
	VisitsByCountry map[string]int
	FirstVisitDate  string
	LastVisitDate   string
}

// DrugSummaryRow is one row of the per-drug summary view.
type DrugSummaryRow struct {
	Drug          string
	TotalQuantity int64
	Patients      int
	Visits        int
}

// MonthlyDemandRow is one row of the month × drug demand rollup.
// Month is formatted "2006-01".
type MonthlyDemandRow struct {
	Month    string
	Drug     string
	Quantity int64
	Patients int
}

// RunSummary captures metrics from a single forecast run.
type RunSummary struct {
	RunID             string
	MonthsAhead       int
	PatientsRead      int
	PatientsRejected  int64
	PlansRead         int
	PlansRejected     int64
	PatientsSkipped   int
	VisitsGenerated   int
	DuplicatesDropped int
	RowsPersisted     int64
	DurationLoad      time.Duration
	DurationGenerate  time.Duration
	DurationExport    time.Duration
	DurationPersist   time.Duration
	DurationTotal     time.Duration
}
