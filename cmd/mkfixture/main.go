// mkfixture writes a small representative pair of input CSVs (subject summary
// and drug dispensation quantities) for demos and tests.
// Usage: go run ./cmd/mkfixture --dir testdata
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var sampleSubjects = [][]string{
	{
		"Study Protocol", "Site ID", "Country", "Depot", "Subject Number",
		"Date Randomized", "Subject Status", "Randomized Treatment", "TPC",
		"Last Study Visit Recorded", "Last Study Visit Date",
	},
	{
		"GS-US-592-6173", "10663", "Japan", "Tokyo-North", "10663-106",
		"2021-03-10", "Crossover Approved",
		"Treatment of Physician's Choice plus Pembrolizumab",
		"Nab-Paclitaxel 100 mg/m2", "Crossover Cycle 2 Day 1", "2023-10-15",
	},
	{
		"GS-US-592-6173", "20735", "France", "3KI Lumbres", "20735-001",
		"2022-11-10", "Randomized",
		"Sacituzumab Govitecan plus Pembrolizumab",
		"n/a", "Cycle 18 Day 1", "2023-12-12",
	},
	{
		"GS-US-592-6173", "23323", "Australia", "Sydney-Central", "23323-045",
		"2022-09-20", "Crossover Approved",
		"Treatment of Physician's Choice plus Pembrolizumab",
		"Paclitaxel 90 mg/m2", "Crossover Cycle 1 Day 8", "2023-10-20",
	},
}

var samplePlans = [][]string{
	{
		"Study Protocol", "Randomized Treatment", "Subject Status", "TPC",
		"Study Drug Dispensed", "Additional Study Drug Dispensed",
		"Visit Days", "Dispensing Quantity", "Dispensing Frequency (Days)",
	},
	{
		"GS-US-592-6173", "Sacituzumab Govitecan plus Pembrolizumab",
		"Randomized", "n/a", "Sacituzumab Govitecan", "", "1,8", "4", "21",
	},
	{
		"GS-US-592-6173", "Sacituzumab Govitecan plus Pembrolizumab",
		"Randomized", "n/a", "", "Pembrolizumab", "1,8", "1", "21",
	},
	{
		"GS-US-592-6173", "Treatment of Physician's Choice plus Pembrolizumab",
		"Randomized", "Nab-Paclitaxel 100 mg/m2", "Nab-Paclitaxel", "", "1,8,15", "1", "28",
	},
	{
		"GS-US-592-6173", "Treatment of Physician's Choice plus Pembrolizumab",
		"Randomized", "Nab-Paclitaxel 100 mg/m2", "", "Pembrolizumab", "1,8,15", "1", "28",
	},
	{
		"GS-US-592-6173", "Treatment of Physician's Choice plus Pembrolizumab",
		"Crossover Approved", "Nab-Paclitaxel 100 mg/m2", "Sacituzumab Govitecan", "", "1,8", "4", "21",
	},
	{
		"GS-US-592-6173", "Treatment of Physician's Choice plus Pembrolizumab",
		"Crossover Approved", "Paclitaxel 90 mg/m2", "Sacituzumab Govitecan", "", "1,8", "4", "21",
	},
}

func main() {
	dir := flag.String("dir", "testdata", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create dir: %v\n", err)
		os.Exit(1)
	}

	write := func(name string, rows [][]string) {
		path := filepath.Join(*dir, name)
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", path, err)
			os.Exit(1)
		}
		w := csv.NewWriter(f)
		if err := w.WriteAll(rows); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "close %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(rows)-1, path)
	}

	write("subject_summary.csv", sampleSubjects)
	write("drug_dispensation.csv", samplePlans)
}
