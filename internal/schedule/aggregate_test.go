package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/sp496/inventory-planning/internal/model"
)

// recordingSink captures progress notices for assertions.
type recordingSink struct {
	total     int
	progress  []int
	unmatched []string
}

func (s *recordingSink) Start(total int) { s.total = total }
func (s *recordingSink) Progress(n int)  { s.progress = append(s.progress, n) }
func (s *recordingSink) NoPlanMatched(subj string) {
	s.unmatched = append(s.unmatched, subj)
}

func samplePatients() []model.Patient {
	return []model.Patient{
		{
			Protocol:       testProtocol,
			SiteID:         "10663",
			Country:        "Japan",
			Depot:          "Tokyo-North",
			SubjectNumber:  "10663-106",
			Status:         "Crossover Approved",
			Treatment:      "Treatment of Physician's Choice plus Pembrolizumab",
			TPC:            "Nab-Paclitaxel 100 mg/m2",
			LastVisitLabel: "Crossover Cycle 2 Day 1",
			LastVisitDate:  date(2023, time.October, 15),
		},
		{
			Protocol:       testProtocol,
			SiteID:         "20735",
			Country:        "France",
			Depot:          "3KI Lumbres",
			SubjectNumber:  "20735-001",
			Status:         "Randomized",
			Treatment:      "Sacituzumab Govitecan plus Pembrolizumab",
			TPC:            "n/a",
			LastVisitLabel: "Cycle 18 Day 1",
			LastVisitDate:  date(2023, time.December, 12),
		},
	}
}

func samplePlans() []model.PlanEntry {
	return []model.PlanEntry{
		{
			Protocol: testProtocol, Treatment: "Sacituzumab Govitecan plus Pembrolizumab",
			Status: "Randomized", TPC: "n/a",
			Drug: "Sacituzumab Govitecan", VisitDaysText: "1,8", FrequencyDays: 21, Quantity: 4,
		},
		{
			Protocol: testProtocol, Treatment: "Sacituzumab Govitecan plus Pembrolizumab",
			Status: "Randomized", TPC: "n/a",
			AdditionalDrug: "Pembrolizumab", VisitDaysText: "1,8", FrequencyDays: 21, Quantity: 1,
		},
		{
			Protocol: testProtocol, Treatment: "Treatment of Physician's Choice plus Pembrolizumab",
			Status: "Crossover Approved", TPC: "Nab-Paclitaxel 100 mg/m2",
			Drug: "Sacituzumab Govitecan", VisitDaysText: "1,8", FrequencyDays: 21, Quantity: 4,
		},
	}
}

func TestGenerate_MultiDrugAndStats(t *testing.T) {
	f := Generate(samplePatients(), samplePlans(), testHorizon(), nil)
	if len(f.Visits) == 0 {
		t.Fatal("expected visits")
	}

	stats := f.Stats()
	if stats.TotalVisits != len(f.Visits) {
		t.Errorf("TotalVisits = %d, want %d", stats.TotalVisits, len(f.Visits))
	}
	if stats.UniquePatients != 2 {
		t.Errorf("UniquePatients = %d, want 2", stats.UniquePatients)
	}
	// The randomized patient receives two drugs, the crossover patient one.
	if len(stats.VisitsByDrug) != 2 {
		t.Errorf("VisitsByDrug has %d drugs, want 2 (%v)", len(stats.VisitsByDrug), stats.VisitsByDrug)
	}
	if stats.VisitsByDrug["Pembrolizumab"] == 0 {
		t.Error("expected Pembrolizumab visits from the additional-drug entry")
	}
	if stats.VisitsByCountry["Japan"] == 0 || stats.VisitsByCountry["France"] == 0 {
		t.Errorf("VisitsByCountry missing a country: %v", stats.VisitsByCountry)
	}
	// Sacituzumab dispenses 4 units per visit.
	if want := int64(stats.VisitsByDrug["Sacituzumab Govitecan"]) * 4; stats.QuantityByDrug["Sacituzumab Govitecan"] != want {
		t.Errorf("Sacituzumab quantity = %d, want %d", stats.QuantityByDrug["Sacituzumab Govitecan"], want)
	}
	if stats.FirstVisitDate == "" || stats.LastVisitDate < stats.FirstVisitDate {
		t.Errorf("bad date range %q..%q", stats.FirstVisitDate, stats.LastVisitDate)
	}
}

func TestGenerate_Deduplicates(t *testing.T) {
	plans := samplePlans()
	// Duplicate the first entry: identical (subject, date, drug) rows must
	// collapse to the first occurrence.
	plans = append(plans, plans[0])

	f := Generate(samplePatients(), plans, testHorizon(), nil)
	if f.DuplicatesDropped == 0 {
		t.Fatal("expected dropped duplicates")
	}
	seen := make(map[model.VisitKey]bool)
	for i := range f.Visits {
		k := f.Visits[i].Key()
		if seen[k] {
			t.Fatalf("duplicate key survived dedup: %+v", k)
		}
		seen[k] = true
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	h := testHorizon()
	a := Generate(samplePatients(), samplePlans(), h, nil)
	b := Generate(samplePatients(), samplePlans(), h, nil)
	if !reflect.DeepEqual(a.Visits, b.Visits) {
		t.Error("two runs over identical inputs produced different visit sequences")
	}
	if !reflect.DeepEqual(a.Stats(), b.Stats()) {
		t.Error("two runs over identical inputs produced different stats")
	}
}

func TestGenerate_UnmatchedPatientSkipped(t *testing.T) {
	patients := samplePatients()
	patients[1].Protocol = "OTHER-PROTOCOL"

	sink := &recordingSink{}
	f := Generate(patients, samplePlans(), testHorizon(), sink)

	if len(sink.unmatched) != 1 || sink.unmatched[0] != "20735-001" {
		t.Errorf("unmatched notices = %v, want [20735-001]", sink.unmatched)
	}
	if !reflect.DeepEqual(f.Unmatched, []string{"20735-001"}) {
		t.Errorf("Unmatched = %v, want [20735-001]", f.Unmatched)
	}
	for i := range f.Visits {
		if f.Visits[i].SubjectNumber == "20735-001" {
			t.Fatal("skipped patient contributed visits")
		}
	}
}

func TestGenerate_InactivePatientZeroVisits(t *testing.T) {
	patients := samplePatients()
	patients[1].Status = "Discontinued"

	f := Generate(patients, samplePlans(), testHorizon(), nil)
	for i := range f.Visits {
		if f.Visits[i].SubjectNumber == "20735-001" {
			t.Fatal("discontinued patient contributed visits")
		}
	}
}

func TestGenerate_ProgressEveryTen(t *testing.T) {
	var patients []model.Patient
	for i := 0; i < 25; i++ {
		patients = append(patients, model.Patient{
			Protocol:      "P",
			SubjectNumber: "S",
			Status:        "Completed",
			Treatment:     "T",
		})
	}
	plans := []model.PlanEntry{{Protocol: "P", Treatment: "T", Status: "Completed", Drug: "D", FrequencyDays: 21}}

	sink := &recordingSink{}
	Generate(patients, plans, testHorizon(), sink)

	if sink.total != 25 {
		t.Errorf("start notice total = %d, want 25", sink.total)
	}
	if !reflect.DeepEqual(sink.progress, []int{10, 20}) {
		t.Errorf("progress notices = %v, want [10 20]", sink.progress)
	}
}

func TestGenerate_EmptyInputs(t *testing.T) {
	f := Generate(nil, nil, testHorizon(), nil)
	if len(f.Visits) != 0 {
		t.Fatalf("expected empty forecast, got %d visits", len(f.Visits))
	}
	stats := f.Stats()
	if stats.TotalVisits != 0 || stats.UniquePatients != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if len(f.DrugSummary()) != 0 || len(f.MonthlyDemand()) != 0 {
		t.Error("expected empty summaries for empty forecast")
	}
}

func TestMonthlyDemand_SortedAndGrouped(t *testing.T) {
	f := Generate(samplePatients(), samplePlans(), testHorizon(), nil)
	rows := f.MonthlyDemand()
	if len(rows) == 0 {
		t.Fatal("expected monthly rows")
	}
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if cur.Month < prev.Month || (cur.Month == prev.Month && cur.Drug <= prev.Drug) {
			t.Fatalf("rows out of order at %d: %+v then %+v", i, prev, cur)
		}
	}
	var total int64
	for _, r := range rows {
		total += r.Quantity
	}
	stats := f.Stats()
	var want int64
	for _, q := range stats.QuantityByDrug {
		want += q
	}
	if total != want {
		t.Errorf("monthly quantities sum to %d, stats sum to %d", total, want)
	}
}
