package model

// PlanEntry is one row of the drug dispensation sheet: the visit schedule and
// dispensing quantity for a single drug under a specific (protocol, treatment,
// status, TPC) key. A multi-drug regimen appears as multiple entries sharing
// the same key, one per drug.
type PlanEntry struct {
	Protocol       string
	Treatment      string
	Status         string
	TPC            string
	Drug           string
	AdditionalDrug string
	VisitDaysText  string
	FrequencyDays  int
	Quantity       int64
}

// DispensedDrug resolves which drug this entry dispenses: the primary drug
// column when populated, otherwise the additional drug column.
func (e *PlanEntry) DispensedDrug() string {
	if e.Drug != "" {
		return e.Drug
	}
	return e.AdditionalDrug
}
