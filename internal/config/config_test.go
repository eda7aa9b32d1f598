package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "preferred", cfg.Database.TLS)

	assert.Equal(t, 0.5, cfg.Profiling.Radius)
	assert.Equal(t, 5, cfg.Profiling.MinNeighbors)

	assert.Equal(t, 1, cfg.Translation.RetryBudget)
	assert.Equal(t, 0.1, cfg.Translation.Temperature)
	assert.Equal(t, 0.15, cfg.Translation.RetryTemperature)
	assert.Equal(t, 700, cfg.Translation.MaxTokens)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoad_YAMLWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	content := `
database:
  host: db.internal
  user: app
  password: ${TEST_DB_PASSWORD}
  database: analysis
profiling:
  radius: 0.7
  min_neighbors: 8
translation:
  retry_budget: 2
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "dataops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password, "env var substituted")
	assert.Equal(t, 0.7, cfg.Profiling.Radius)
	assert.Equal(t, 8, cfg.Profiling.MinNeighbors)
	assert.Equal(t, 2, cfg.Translation.RetryBudget)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset keys keep their defaults
	assert.Equal(t, 0.1, cfg.Translation.Temperature)
	assert.Equal(t, 3306, cfg.Database.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadOrDefault_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Profiling, cfg.Profiling)
}

func TestExpandEnvVar_UnknownVarKept(t *testing.T) {
	assert.Equal(t, "${DEFINITELY_NOT_SET_ANYWHERE}", expandEnvVar("${DEFINITELY_NOT_SET_ANYWHERE}"))
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("debug", "text", 0.9, 7, 3)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 0.9, cfg.Profiling.Radius)
	assert.Equal(t, 7, cfg.Profiling.MinNeighbors)
	assert.Equal(t, 3, cfg.Translation.RetryBudget)
}

func TestApplyOverrides_ZeroValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("", "", 0, 0, -1)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyOverrides_ZeroRetryBudgetApplied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides("", "", 0, 0, 0)
	assert.Equal(t, 0, cfg.Translation.RetryBudget, "zero disables retries and must be honored")
}

func TestValidate_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profiling.Radius = -1
	cfg.Profiling.MinNeighbors = 0
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profiling.radius")
	assert.Contains(t, err.Error(), "profiling.min_neighbors")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateDatabase(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ValidateDatabase()
	require.Error(t, err, "defaults carry no credentials")
	assert.Contains(t, err.Error(), "database.user")
	assert.Contains(t, err.Error(), "database.database")

	cfg.Database.User = "app"
	cfg.Database.Database = "analysis"
	assert.NoError(t, cfg.ValidateDatabase())

	cfg.Database.Port = 70000
	err = cfg.ValidateDatabase()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port must be between 1 and 65535")
}

func TestValidationErrorsFormat(t *testing.T) {
	errs := ValidationErrors{
		{Field: "profiling.radius", Message: "must be greater than zero"},
		{Field: "logging.format", Message: `unknown format "xml" (use json or text)`},
	}
	want := "validation failed:\n  - profiling.radius: must be greater than zero\n  - logging.format: unknown format \"xml\" (use json or text)"
	assert.Equal(t, want, errs.Error())

	assert.Empty(t, ValidationErrors{}.Error())
}

func TestValidate_DoesNotRequireDatabase(t *testing.T) {
	// Profiling runs fully in memory; Validate must pass without credentials
	assert.NoError(t, DefaultConfig().Validate())
}
