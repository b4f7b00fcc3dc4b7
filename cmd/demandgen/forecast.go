package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/sp496/inventory-planning/internal/db"
	"github.com/sp496/inventory-planning/internal/exitcode"
	"github.com/sp496/inventory-planning/internal/forecast"
	"github.com/sp496/inventory-planning/internal/logging"
	"github.com/sp496/inventory-planning/internal/schedule"
)

var forecastConfigFile string

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Generate the projected visit schedule and demand summaries",
	RunE:  runForecast,
}

func init() {
	f := forecastCmd.Flags()
	f.StringVar(&cfg.SubjectsPath, "subjects", "", "Path to subject summary CSV (required)")
	f.StringVar(&cfg.PlansPath, "plans", "", "Path to drug dispensation CSV (required)")
	f.StringVar(&cfg.OutDir, "out-dir", ".", "Directory for output files")
	f.StringVar(&cfg.Format, "format", "", "Demand table format: csv, parquet, or both (default csv)")
	f.IntVar(&cfg.MonthsAhead, "months", 0, "Projection horizon in months (default 12)")
	f.BoolVar(&cfg.Persist, "persist", false, "Persist the forecast to Postgres")
	f.StringVar(&forecastConfigFile, "config", "", "Optional YAML config file")
	_ = forecastCmd.MarkFlagRequired("subjects")
	_ = forecastCmd.MarkFlagRequired("plans")
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if forecastConfigFile != "" {
		if err := cfg.LoadFromFile(forecastConfigFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if cfg.MonthsAhead == 0 {
		cfg.MonthsAhead = schedule.DefaultMonthsAhead
	}

	validate := cfg.Validate
	if cfg.Persist {
		validate = cfg.ValidateWithDSN
	}
	if err := validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	var pool *pgxpool.Pool
	if cfg.Persist {
		var err error
		pool, err = db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()
	}

	summary, err := forecast.Run(ctx, pool, log, &cfg, time.Now())
	if err != nil {
		if pe, ok := err.(*forecast.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("forecast failed")
			switch pe.Phase {
			case "load":
				os.Exit(exitcode.LoadError)
			case "export":
				os.Exit(exitcode.ExportError)
			default:
				os.Exit(exitcode.PersistError)
			}
		}
		log.Error().Err(err).Msg("forecast failed")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Printf("Forecast complete: %d visits for %d patients, %d skipped (%.1fs)\n",
		summary.VisitsGenerated, summary.PatientsRead, summary.PatientsSkipped,
		summary.DurationTotal.Seconds())
	return nil
}
