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
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/suggest"
)

var (
	suggestInput  string
	suggestOutput string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Propose cleaning actions for a dataset",
	Long: `Suggest profiles a CSV dataset and derives deterministic cleaning
proposals: dropping sparse columns, imputing moderately missing ones,
and removing duplicate rows.

The proposal list can be saved as JSON, edited, and fed back into the
clean command.

Example:
  dataops suggest --input sales.csv --output actions.json`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestInput, "input", "i", "",
		"Path to the CSV dataset (required)")
	suggestCmd.MarkFlagRequired("input")

	suggestCmd.Flags().StringVarP(&suggestOutput, "output", "o", "",
		"Write proposals as JSON to this file")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ds, err := loadDataset(suggestInput)
	if err != nil {
		return err
	}

	rep, err := profiler.New(log).Profile(ds, outlier.Params{
		Radius:       cfg.Profiling.Radius,
		MinNeighbors: cfg.Profiling.MinNeighbors,
	})
	if err != nil {
		return fmt.Errorf("profiling failed: %w", err)
	}

	proposals := suggest.NewEngine(log).Suggest(rep)

	if suggestOutput != "" {
		f, err := os.Create(suggestOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(proposals); err != nil {
			return fmt.Errorf("failed to encode proposals: %w", err)
		}
		log.Infow("Wrote proposals", "file", suggestOutput, "count", len(proposals))
	}

	report.NewRenderer(cmd.OutOrStdout(), noColor).RenderSuggestions(proposals)
	return nil
}
