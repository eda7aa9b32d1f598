package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/config"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	radius       float64
	minNeighbors int
	retryBudget  int
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "dataops",
	Short: "Dataset profiling, cleaning and natural-language querying",
	Long: `A CLI tool for analyzing tabular datasets: statistical profiling with
density-based outlier detection, rule-based cleaning suggestions, and
natural-language querying through a chat-completion model.

Features:
  - Per-column descriptive statistics, correlation, skewness and kurtosis
  - DBSCAN outlier detection on standardized numeric columns
  - Deterministic cleaning proposals with safe batch application
  - Natural language to SQL, expression or chart-parameter translation
    with validation and bounded retry`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "dataops.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Profiling overrides
	rootCmd.PersistentFlags().Float64Var(&radius, "radius", 0,
		"Override outlier neighborhood radius (standardized units)")
	rootCmd.PersistentFlags().IntVar(&minNeighbors, "min-neighbors", 0,
		"Override minimum neighbors for an outlier core point")

	// Translation overrides
	rootCmd.PersistentFlags().IntVar(&retryBudget, "retry-budget", -1,
		"Override translation retry budget (additional attempts after the first)")

	// Output styling
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored terminal output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel     string
	LogFormat    string
	Radius       float64
	MinNeighbors int
	RetryBudget  int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		Radius:       radius,
		MinNeighbors: minNeighbors,
		RetryBudget:  retryBudget,
	}
}

// loadConfig loads the configuration file (falling back to defaults when
// the file is absent) and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Radius, overrides.MinNeighbors, overrides.RetryBudget)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadDataset reads a CSV dataset from disk.
func loadDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := dataset.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return ds, nil
}
