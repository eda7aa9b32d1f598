package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/dataset"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/outlier"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/profiler"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/suggest"
)

var (
	cleanInput   string
	cleanOutput  string
	cleanActions string
	cleanAuto    bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Apply cleaning actions to a dataset",
	Long: `Clean applies a batch of cleaning actions to a CSV dataset and writes
the cleaned copy. Actions come from a JSON file produced by the suggest
command, or are derived automatically with --auto.

Individual actions that cannot be applied are skipped with a warning;
the rest of the batch still runs.

Example:
  dataops clean --input sales.csv --actions actions.json --output cleaned.csv
  dataops clean --input sales.csv --auto --output cleaned.csv`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInput, "input", "i", "",
		"Path to the CSV dataset (required)")
	cleanCmd.MarkFlagRequired("input")

	cleanCmd.Flags().StringVarP(&cleanOutput, "output", "o", "",
		"Path for the cleaned CSV (required)")
	cleanCmd.MarkFlagRequired("output")

	cleanCmd.Flags().StringVarP(&cleanActions, "actions", "a", "",
		"JSON file with cleaning actions (from suggest)")
	cleanCmd.Flags().BoolVar(&cleanAuto, "auto", false,
		"Derive actions automatically instead of reading a file")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if cleanActions == "" && !cleanAuto {
		return fmt.Errorf("either --actions or --auto is required")
	}
	if cleanActions != "" && cleanAuto {
		return fmt.Errorf("--actions and --auto are mutually exclusive")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ds, err := loadDataset(cleanInput)
	if err != nil {
		return err
	}

	engine := suggest.NewEngine(log)

	var actions []suggest.ActionProposal
	if cleanAuto {
		rep, err := profiler.New(log).Profile(ds, outlier.Params{
			Radius:       cfg.Profiling.Radius,
			MinNeighbors: cfg.Profiling.MinNeighbors,
		})
		if err != nil {
			return fmt.Errorf("profiling failed: %w", err)
		}
		actions = engine.Suggest(rep)
	} else {
		data, err := os.ReadFile(cleanActions)
		if err != nil {
			return fmt.Errorf("failed to read actions file: %w", err)
		}
		if err := json.Unmarshal(data, &actions); err != nil {
			return fmt.Errorf("failed to parse actions file: %w", err)
		}
	}

	cleaned, applied := engine.Apply(ds, actions)

	f, err := os.Create(cleanOutput)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := dataset.WriteCSV(f, cleaned); err != nil {
		return fmt.Errorf("failed to write cleaned dataset: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d of %d action(s)\n", len(applied), len(actions))
	for _, a := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", a)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rows: %d -> %d, Columns: %d -> %d\n",
		ds.NumRows(), cleaned.NumRows(), ds.NumColumns(), cleaned.NumColumns())
	return nil
}
