package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/sp496/inventory-planning/internal/model"
)

// DefaultMonthsAhead is the projection horizon used when the caller does not
// override it.
const DefaultMonthsAhead = 12

// Horizon fixes the projection window: MonthsAhead months (at 30 days per
// month) forward from Now. Now is injected so runs are reproducible.
type Horizon struct {
	Now         time.Time
	MonthsAhead int
}

// End returns the last date a projected visit may fall on.
func (h Horizon) End() time.Time {
	return h.Now.AddDate(0, 0, h.MonthsAhead*30)
}

// Project computes the ordered future visit schedule for one patient and one
// plan entry, from the patient's last recorded visit up to the horizon end.
// Inactive patients get an empty schedule. Every emitted visit is strictly
// after the last recorded visit date and no later than the horizon end.
func Project(p *model.Patient, e *model.PlanEntry, h Horizon) []model.ProjectedVisit {
	if !IsActive(p.Status) {
		return nil
	}
	// Non-positive cycle length would keep the date pointer from advancing.
	// The loader rejects such rows; bail here as well.
	if e.FrequencyDays < 1 {
		return nil
	}

	drug := e.DispensedDrug()
	visitDays := ParseVisitDays(e.VisitDaysText)
	frequency := e.FrequencyDays
	last := ParseVisitLabel(p.LastVisitLabel)
	lastDate := p.LastVisitDate
	endDate := h.End()

	prefix := "Cycle"
	if strings.Contains(strings.ToLower(p.Status), "crossover") {
		prefix = "Crossover Cycle"
	}

	// A cycle whose only visit day equals (or exceeds) the cycle length
	// would never advance the date pointer.
	if frequency <= visitDays[0] {
		return nil
	}

	// Position the pointer on the first candidate visit. If the last recorded
	// day has later siblings in the same cycle, stay in that cycle and resume
	// the day sequence at the next offset; otherwise jump a full cycle length
	// forward and restart at the first offset.
	cycle := last.Cycle
	current := lastDate
	startIdx := 0
	if idx := dayIndex(visitDays, last.Day); idx >= 0 && idx < len(visitDays)-1 {
		startIdx = idx + 1
		current = lastDate.AddDate(0, 0, visitDays[idx+1]-last.Day)
	} else {
		cycle++
		current = lastDate.AddDate(0, 0, frequency)
	}

	var visits []model.ProjectedVisit
	for !current.After(endDate) {
		for i := startIdx; i < len(visitDays); i++ {
			day := visitDays[i]
			if current.After(lastDate) && !current.After(endDate) {
				visits = append(visits, model.ProjectedVisit{
					Protocol:      p.Protocol,
					SubjectNumber: p.SubjectNumber,
					SiteID:        p.SiteID,
					Depot:         p.Depot,
					Country:       p.Country,
					Status:        p.Status,
					Treatment:     p.Treatment,
					TPC:           p.TPC,
					Drug:          drug,
					Quantity:      e.Quantity,
					Date:          current,
					Label:         fmt.Sprintf("%s %d Day %d", prefix, cycle, day),
					Cycle:         cycle,
					Day:           day,
				})
			}
			if i < len(visitDays)-1 {
				current = current.AddDate(0, 0, visitDays[i+1]-day)
			}
		}
		// Advance into the next cycle. The increment composes with the
		// pointer position left by the inner loop rather than resetting
		// from a cycle-start anchor.
		startIdx = 0
		cycle++
		current = current.AddDate(0, 0, frequency-visitDays[len(visitDays)-1])
	}
	return visits
}

func dayIndex(days []int, day int) int {
	for i, d := range days {
		if d == day {
			return i
		}
	}
	return -1
}
