package model

import "time"

// Patient is one row of the subject summary sheet: a trial participant with
// their current enrollment state and last recorded visit. Read-only input.
type Patient struct {
	Protocol       string
	SiteID         string
	Country        string
	Depot          string
	SubjectNumber  string
	DateRandomized *time.Time
	Status         string
	Treatment      string
	TPC            string
	LastVisitLabel string
	LastVisitDate  time.Time
}
