package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sp496/inventory-planning/internal/exitcode"
	"github.com/sp496/inventory-planning/internal/logging"
	"github.com/sp496/inventory-planning/internal/schedule"
	"github.com/sp496/inventory-planning/internal/tabread"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and demand stats (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.SubjectsPath, "subjects", "", "Path to subject summary CSV (required)")
	f.StringVar(&cfg.PlansPath, "plans", "", "Path to drug dispensation CSV (required)")
	f.IntVar(&cfg.MonthsAhead, "months", 12, "Projection horizon in months")
	_ = planCmd.MarkFlagRequired("subjects")
	_ = planCmd.MarkFlagRequired("plans")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	subjects, err := tabread.ReadSubjects(cfg.SubjectsPath, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load subject summary")
		os.Exit(exitcode.ValidationError)
	}
	plans, err := tabread.ReadPlans(cfg.PlansPath, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load drug dispensation sheet")
		os.Exit(exitcode.ValidationError)
	}

	active := 0
	for i := range subjects.Patients {
		if schedule.IsActive(subjects.Patients[i].Status) {
			active++
		}
	}

	h := schedule.Horizon{Now: time.Now(), MonthsAhead: cfg.MonthsAhead}
	f := schedule.Generate(subjects.Patients, plans.Entries, h, schedule.NopSink{})
	stats := f.Stats()

	// Print report
	fmt.Println("=== demandgen plan ===")
	fmt.Printf("Subjects:        %s\n", cfg.SubjectsPath)
	fmt.Printf("Plans:           %s\n", cfg.PlansPath)
	fmt.Printf("Horizon:         %d months\n", cfg.MonthsAhead)
	fmt.Printf("Patients:        %d (%d active, %d rejected rows)\n",
		len(subjects.Patients), active, subjects.RowsRejected)
	fmt.Printf("Plan entries:    %d (%d rejected rows)\n", len(plans.Entries), plans.RowsRejected)
	fmt.Printf("Unmatched:       %d patients\n", len(f.Unmatched))
	fmt.Println()
	fmt.Println("Projected demand by drug:")
	for _, r := range f.DrugSummary() {
		fmt.Printf("  %-30s %6d visits  %8d units  %4d patients\n",
			r.Drug, r.Visits, r.TotalQuantity, r.Patients)
	}
	fmt.Printf("\nTotal projected visits: %d (%s to %s)\n",
		stats.TotalVisits, stats.FirstVisitDate, stats.LastVisitDate)
	fmt.Println("Input validation: OK")

	return nil
}
