package schedule

import (
	"sort"

	"github.com/sp496/inventory-planning/internal/model"
)

// Forecast is the collected, deduplicated result of projecting every patient
// against their matched plan entries.
type Forecast struct {
	Visits []model.ProjectedVisit
	// Unmatched lists subject numbers for which no plan entry matched.
	Unmatched []string
	// DuplicatesDropped counts rows removed by (subject, date, drug) dedup.
	DuplicatesDropped int
}

// Generate runs the full projection: for each patient, resolve the matching
// plan entries and project future visits for each matched drug, then drop
// duplicate (subject, date, drug) rows keeping the first occurrence. Patients
// without a matching plan are reported through the sink and skipped. An empty
// patient or plan set yields an empty forecast.
func Generate(patients []model.Patient, plans []model.PlanEntry, h Horizon, sink ProgressSink) *Forecast {
	if sink == nil {
		sink = NopSink{}
	}
	sink.Start(len(patients))

	f := &Forecast{}
	seen := make(map[model.VisitKey]bool)

	for i := range patients {
		p := &patients[i]

		matched := MatchPlans(p, plans)
		if matched == nil {
			sink.NoPlanMatched(p.SubjectNumber)
			f.Unmatched = append(f.Unmatched, p.SubjectNumber)
		} else {
			for j := range matched {
				for _, v := range Project(p, &matched[j], h) {
					k := v.Key()
					if seen[k] {
						f.DuplicatesDropped++
						continue
					}
					seen[k] = true
					f.Visits = append(f.Visits, v)
				}
			}
		}

		if (i+1)%10 == 0 {
			sink.Progress(i + 1)
		}
	}
	return f
}

// Stats derives the aggregate statistics for the forecast. Empty forecasts
// yield zero counts and empty maps.
func (f *Forecast) Stats() model.ForecastStats {
	stats := model.ForecastStats{
		VisitsByDrug:    make(map[string]int),
		QuantityByDrug:  make(map[string]int64),
		VisitsByCountry: make(map[string]int),
	}

	subjects := make(map[string]bool)
	for i := range f.Visits {
		v := &f.Visits[i]
		stats.TotalVisits++
		subjects[v.SubjectNumber] = true
		stats.VisitsByDrug[v.Drug]++
		stats.QuantityByDrug[v.Drug] += v.Quantity
		stats.VisitsByCountry[v.Country]++

		d := v.DateString()
		if stats.FirstVisitDate == "" || d < stats.FirstVisitDate {
			stats.FirstVisitDate = d
		}
		if d > stats.LastVisitDate {
			stats.LastVisitDate = d
		}
	}
	stats.UniquePatients = len(subjects)
	return stats
}

// DrugSummary groups the forecast by drug: total quantity, distinct patients,
// and visit count, sorted by drug name for stable output.
func (f *Forecast) DrugSummary() []model.DrugSummaryRow {
	type acc struct {
		quantity int64
		patients map[string]bool
		visits   int
	}
	byDrug := make(map[string]*acc)
	for i := range f.Visits {
		v := &f.Visits[i]
		a := byDrug[v.Drug]
		if a == nil {
			a = &acc{patients: make(map[string]bool)}
			byDrug[v.Drug] = a
		}
		a.quantity += v.Quantity
		a.patients[v.SubjectNumber] = true
		a.visits++
	}

	rows := make([]model.DrugSummaryRow, 0, len(byDrug))
	for drug, a := range byDrug {
		rows = append(rows, model.DrugSummaryRow{
			Drug:          drug,
			TotalQuantity: a.quantity,
			Patients:      len(a.patients),
			Visits:        a.visits,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Drug < rows[j].Drug })
	return rows
}

// MonthlyDemand rolls the forecast up by calendar month and drug, sorted by
// (month, drug) for stable output.
func (f *Forecast) MonthlyDemand() []model.MonthlyDemandRow {
	type key struct{ month, drug string }
	type acc struct {
		quantity int64
		patients map[string]bool
	}
	byKey := make(map[key]*acc)
	for i := range f.Visits {
		v := &f.Visits[i]
		k := key{month: v.Date.Format("2006-01"), drug: v.Drug}
		a := byKey[k]
		if a == nil {
			a = &acc{patients: make(map[string]bool)}
			byKey[k] = a
		}
		a.quantity += v.Quantity
		a.patients[v.SubjectNumber] = true
	}

	rows := make([]model.MonthlyDemandRow, 0, len(byKey))
	for k, a := range byKey {
		rows = append(rows, model.MonthlyDemandRow{
			Month:    k.month,
			Drug:     k.drug,
			Quantity: a.quantity,
			Patients: len(a.patients),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		return rows[i].Drug < rows[j].Drug
	})
	return rows
}
