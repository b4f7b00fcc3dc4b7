package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sp496/inventory-planning/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "demandgen",
	Short: "Clinical-trial drug demand forecaster",
	Long:  "Projects future clinic-visit dates and drug quantities from subject summary and drug dispensation sheets, for drug inventory forecasting.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
