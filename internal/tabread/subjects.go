package tabread

import (
	"github.com/rs/zerolog"

	"github.com/sp496/inventory-planning/internal/model"
)

// Column names of the subject summary sheet.
const (
	colProtocol       = "Study Protocol"
	colSiteID         = "Site ID"
	colCountry        = "Country"
	colDepot          = "Depot"
	colSubjectNumber  = "Subject Number"
	colDateRandomized = "Date Randomized"
	colStatus         = "Subject Status"
	colTreatment      = "Randomized Treatment"
	colTPC            = "TPC"
	colLastVisit      = "Last Study Visit Recorded"
	colLastVisitDate  = "Last Study Visit Date"
)

var subjectRequired = []string{
	colProtocol,
	colSubjectNumber,
	colStatus,
	colTreatment,
	colLastVisit,
	colLastVisitDate,
}

// SubjectResult holds the loaded patients plus read metrics.
type SubjectResult struct {
	Patients     []model.Patient
	RowsRead     int64
	RowsRejected int64
}

// ReadSubjects loads the subject summary sheet. Rows without a parseable
// last-visit date are rejected with a warning; the projector has no anchor
// to schedule from without one.
func ReadSubjects(path string, log zerolog.Logger) (*SubjectResult, error) {
	s, err := openSheet(path, subjectRequired)
	if err != nil {
		return nil, err
	}
	defer s.close()

	res := &SubjectResult{}
	for {
		row, done, err := s.next()
		if done {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res.RowsRead++

		lastDate := ParseDate(s.get(row, colLastVisitDate))
		if lastDate == nil {
			res.RowsRejected++
			log.Warn().
				Int64("row", s.rowNum).
				Str("subject", s.get(row, colSubjectNumber)).
				Msg("subject row rejected: unparseable last visit date")
			continue
		}

		res.Patients = append(res.Patients, model.Patient{
			Protocol:       s.get(row, colProtocol),
			SiteID:         s.get(row, colSiteID),
			Country:        s.get(row, colCountry),
			Depot:          s.get(row, colDepot),
			SubjectNumber:  s.get(row, colSubjectNumber),
			DateRandomized: ParseDate(s.get(row, colDateRandomized)),
			Status:         s.get(row, colStatus),
			Treatment:      s.get(row, colTreatment),
			TPC:            s.get(row, colTPC),
			LastVisitLabel: s.get(row, colLastVisit),
			LastVisitDate:  *lastDate,
		})
	}
}
