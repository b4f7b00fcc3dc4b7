package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats for the demand table.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
	FormatBoth    = "both"
)

// Config holds all runtime configuration for a demandgen run.
type Config struct {
	DSN          string
	SubjectsPath string
	PlansPath    string
	OutDir       string
	Format       string // "csv", "parquet", or "both"
	LogFormat    string // "text" or "json"
	MonthsAhead  int    `yaml:"months_ahead"`
	Persist      bool
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	MonthsAhead int    `yaml:"months_ahead"`
	Format      string `yaml:"format"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set on the Config (e.g. from flags) win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.MonthsAhead == 0 {
		c.MonthsAhead = yc.MonthsAhead
	}
	if c.Format == "" {
		c.Format = yc.Format
	}
	return nil
}

// Validate checks the fields every command needs and applies defaults.
func (c *Config) Validate() error {
	if c.SubjectsPath == "" {
		return fmt.Errorf("--subjects is required")
	}
	if _, err := os.Stat(c.SubjectsPath); err != nil {
		return fmt.Errorf("subjects file not accessible: %w", err)
	}
	if c.PlansPath == "" {
		return fmt.Errorf("--plans is required")
	}
	if _, err := os.Stat(c.PlansPath); err != nil {
		return fmt.Errorf("plans file not accessible: %w", err)
	}
	if c.MonthsAhead < 1 {
		return fmt.Errorf("--months must be a positive number of months, got %d", c.MonthsAhead)
	}
	switch c.Format {
	case FormatCSV, FormatParquet, FormatBoth:
	case "":
		c.Format = FormatCSV
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	return nil
}

// ValidateWithDSN checks input fields and the DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
