package model

// ForecastRow mirrors the Parquet schema for a single projected visit.
// Dates are carried as ISO strings matching the CSV export so both formats
// are byte-comparable across runs.
type ForecastRow struct {
	Protocol      string `parquet:"study_protocol"`
	SubjectNumber string `parquet:"subject_number"`
	SiteID        string `parquet:"site_id,optional"`
	Depot         string `parquet:"depot,optional"`
	Country       string `parquet:"country,optional"`
	Status        string `parquet:"subject_status,optional"`
	Treatment     string `parquet:"randomized_treatment,optional"`
	TPC           string `parquet:"tpc,optional"`
	Drug          string `parquet:"dispensing_drug"`
	Quantity      int64  `parquet:"dispensing_quantity"`
	VisitDate     string `parquet:"projected_visit_date"`
	VisitLabel    string `parquet:"projected_visit_number"`
	Cycle         int32  `parquet:"projected_study_cycle"`
	CycleDay      int32  `parquet:"projected_study_cycle_day"`
}

// ToForecastRow converts a projected visit to its Parquet representation.
func (v *ProjectedVisit) ToForecastRow() ForecastRow {
	return ForecastRow{
		Protocol:      v.Protocol,
		SubjectNumber: v.SubjectNumber,
		SiteID:        v.SiteID,
		Depot:         v.Depot,
		Country:       v.Country,
		Status:        v.Status,
		Treatment:     v.Treatment,
		TPC:           v.TPC,
		Drug:          v.Drug,
		Quantity:      v.Quantity,
		VisitDate:     v.DateString(),
		VisitLabel:    v.Label,
		Cycle:         int32(v.Cycle),
		CycleDay:      int32(v.Day),
	}
}
