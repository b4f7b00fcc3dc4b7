// Package export writes a forecast to files: the full demand table as CSV or
// Parquet, plus the per-drug and per-month summary views. All writers emit
// rows in a stable order so identical runs produce identical bytes.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sp496/inventory-planning/internal/model"
)

// demandHeader matches the column names of the input sheets so downstream
// spreadsheets line up with the source data.
var demandHeader = []string{
	"Study Protocol",
	"Subject Number",
	"Site ID",
	"Depot",
	"Country",
	"Subject Status",
	"Randomized Treatment",
	"TPC",
	"Dispensing Drug",
	"Dispensing Quantity",
	"Projected Visit Date",
	"Projected Visit Number",
	"Projected Study Cycle",
	"Projected Study Cycle Day",
}

// WriteDemandCSV writes the full projected-visit table.
func WriteDemandCSV(path string, visits []model.ProjectedVisit) error {
	return writeCSV(path, demandHeader, len(visits), func(i int) []string {
		v := &visits[i]
		return []string{
			v.Protocol,
			v.SubjectNumber,
			v.SiteID,
			v.Depot,
			v.Country,
			v.Status,
			v.Treatment,
			v.TPC,
			v.Drug,
			strconv.FormatInt(v.Quantity, 10),
			v.DateString(),
			v.Label,
			strconv.Itoa(v.Cycle),
			strconv.Itoa(v.Day),
		}
	})
}

// WriteDrugSummaryCSV writes the per-drug rollup.
func WriteDrugSummaryCSV(path string, rows []model.DrugSummaryRow) error {
	header := []string{"Dispensing Drug", "Total Quantity Needed", "Number of Patients", "Number of Visits"}
	return writeCSV(path, header, len(rows), func(i int) []string {
		r := &rows[i]
		return []string{
			r.Drug,
			strconv.FormatInt(r.TotalQuantity, 10),
			strconv.Itoa(r.Patients),
			strconv.Itoa(r.Visits),
		}
	})
}

// WriteMonthlySummaryCSV writes the month × drug rollup.
func WriteMonthlySummaryCSV(path string, rows []model.MonthlyDemandRow) error {
	header := []string{"Month", "Dispensing Drug", "Quantity Needed", "Number of Patients"}
	return writeCSV(path, header, len(rows), func(i int) []string {
		r := &rows[i]
		return []string{
			r.Month,
			r.Drug,
			strconv.FormatInt(r.Quantity, 10),
			strconv.Itoa(r.Patients),
		}
	})
}

func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			f.Close()
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}
