package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/config"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/logger"
	"github.com/Narayan18panigrahy/The-AI-Innovators-Lab/internal/store"
)

var validateCheckDB bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and run preflight checks",
	Long: `Validate checks the configuration file and optionally verifies that
the MySQL query store is reachable.

Checks performed:
  - Configuration syntax and value ranges
  - Profiling and translation parameter sanity
  - Query store connectivity (with --check-db)

Example:
  dataops validate --config dataops.yaml --check-db`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateCheckDB, "check-db", false,
		"Also connect to the MySQL query store")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Radius, overrides.MinNeighbors, overrides.RetryBudget)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cmd.Printf("Config file: %s\n", configFile)
	cmd.Printf("Outlier radius: %.2f, min neighbors: %d\n",
		cfg.Profiling.Radius, cfg.Profiling.MinNeighbors)
	cmd.Printf("Translation retry budget: %d\n", cfg.Translation.RetryBudget)
	cmd.Printf("Completion model: %s\n", cfg.LLM.Model)

	if validateCheckDB {
		if err := cfg.ValidateDatabase(); err != nil {
			return fmt.Errorf("database configuration invalid: %w", err)
		}

		log.Info("Checking query store connectivity...")
		st, err := store.NewMySQLStore(cmd.Context(), &cfg.Database, log)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Ping(cmd.Context()); err != nil {
			return err
		}
		cmd.Printf("Query store: %s:%d/%s reachable\n",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
	}

	cmd.Println("Configuration is valid")
	return nil
}
