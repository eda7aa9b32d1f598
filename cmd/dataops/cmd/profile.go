package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/outlier"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/profiler"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/report"
)

var (
	profileInput  string
	profileOutput string
	profileJSON   bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Compute a statistical profile of a dataset",
	Long: `Profile reads a CSV dataset and computes per-column statistics,
missing-value counts, cardinality, correlation, distribution shape, and
density-based outlier detection.

Example:
  dataops profile --input sales.csv
  dataops profile --input sales.csv --json --output profile.json`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVarP(&profileInput, "input", "i", "",
		"Path to the CSV dataset (required)")
	profileCmd.MarkFlagRequired("input")

	profileCmd.Flags().StringVarP(&profileOutput, "output", "o", "",
		"Write the report to this file instead of stdout")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false,
		"Emit the report as JSON instead of tables")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ds, err := loadDataset(profileInput)
	if err != nil {
		return err
	}

	log.Infow("Profiling dataset",
		"input", profileInput,
		"rows", ds.NumRows(),
		"columns", ds.NumColumns(),
	)

	rep, err := profiler.New(log).Profile(ds, outlier.Params{
		Radius:       cfg.Profiling.Radius,
		MinNeighbors: cfg.Profiling.MinNeighbors,
	})
	if err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if profileOutput != "" {
		f, err := os.Create(profileOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if profileJSON || profileOutput != "" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	}

	report.NewRenderer(out, noColor).RenderProfile(rep)
	return nil
}
