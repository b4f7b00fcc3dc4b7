package schedule

import (
	"strings"

	"github.com/sp496/inventory-planning/internal/model"
)

// MatchPlans resolves the treatment-plan entries applicable to a patient.
// The strict filter requires equality on protocol, randomized treatment, and
// subject status; when the patient carries a real TPC value (non-empty and
// not "n/a") the entry's TPC must match too. If the strict filter matches
// nothing, a relaxed pass drops the status requirement, which covers statuses
// the dispensation sheet doesn't enumerate (e.g. "Crossover Approved" arms
// keyed under their randomized status). Returns nil when neither pass
// matches; the caller warns and skips the patient.
func MatchPlans(p *model.Patient, entries []model.PlanEntry) []model.PlanEntry {
	matched := filterPlans(p, entries, true)
	if len(matched) == 0 {
		matched = filterPlans(p, entries, false)
	}
	if len(matched) == 0 {
		return nil
	}
	return matched
}

func filterPlans(p *model.Patient, entries []model.PlanEntry, matchStatus bool) []model.PlanEntry {
	requireTPC := tpcApplies(p.TPC)
	var matched []model.PlanEntry
	for _, e := range entries {
		if e.Protocol != p.Protocol || e.Treatment != p.Treatment {
			continue
		}
		if matchStatus && e.Status != p.Status {
			continue
		}
		if requireTPC && e.TPC != p.TPC {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// tpcApplies reports whether the patient's TPC sub-classification constrains
// plan matching. Empty values and the "n/a" marker do not.
func tpcApplies(tpc string) bool {
	t := strings.TrimSpace(tpc)
	return t != "" && !strings.EqualFold(t, "n/a")
}
