package tabread

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sp496/inventory-planning/internal/model"
)

// Column names of the drug dispensation sheet.
const (
	colDrug           = "Study Drug Dispensed"
	colAdditionalDrug = "Additional Study Drug Dispensed"
	colVisitDays      = "Visit Days"
	colQuantity       = "Dispensing Quantity"
	colFrequency      = "Dispensing Frequency (Days)"
)

var planRequired = []string{
	colProtocol,
	colTreatment,
	colStatus,
	colVisitDays,
	colQuantity,
	colFrequency,
}

// PlanResult holds the loaded plan entries plus read metrics.
type PlanResult struct {
	Entries      []model.PlanEntry
	RowsRead     int64
	RowsRejected int64
}

// ReadPlans loads the drug dispensation sheet. Rows whose dispensing
// frequency is missing or not a positive day count are rejected with a
// warning: the projection loop cannot advance on them. A malformed quantity
// defaults to 0 rather than rejecting the row.
func ReadPlans(path string, log zerolog.Logger) (*PlanResult, error) {
	s, err := openSheet(path, planRequired)
	if err != nil {
		return nil, err
	}
	defer s.close()

	res := &PlanResult{}
	for {
		row, done, err := s.next()
		if done {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res.RowsRead++

		freq, err := strconv.Atoi(s.get(row, colFrequency))
		if err != nil || freq < 1 {
			res.RowsRejected++
			log.Warn().
				Int64("row", s.rowNum).
				Str("frequency", s.get(row, colFrequency)).
				Msg("plan row rejected: invalid dispensing frequency")
			continue
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(s.get(row, colQuantity)), 10, 64)
		if err != nil {
			qty = 0
		}

		res.Entries = append(res.Entries, model.PlanEntry{
			Protocol:       s.get(row, colProtocol),
			Treatment:      s.get(row, colTreatment),
			Status:         s.get(row, colStatus),
			TPC:            s.get(row, colTPC),
			Drug:           s.get(row, colDrug),
			AdditionalDrug: s.get(row, colAdditionalDrug),
			VisitDaysText:  s.get(row, colVisitDays),
			FrequencyDays:  freq,
			Quantity:       qty,
		})
	}
}
