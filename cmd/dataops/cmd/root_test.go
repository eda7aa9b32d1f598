package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigFile(t *testing.T) {
	// Save original value and restore after test
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{
			name:     "default config file",
			cfgValue: "",
			want:     "",
		},
		{
			name:     "custom config file",
			cfgValue: "/path/to/custom.yaml",
			want:     "/path/to/custom.yaml",
		},
		{
			name:     "config file with spaces",
			cfgValue: "/path/to/my config.yaml",
			want:     "/path/to/my config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			got := GetConfigFile()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCLIOverrides(t *testing.T) {
	// Save original values and restore after test
	originalLogLevel := logLevel
	originalLogFormat := logFormat
	originalRadius := radius
	originalMinNeighbors := minNeighbors
	originalRetryBudget := retryBudget
	defer func() {
		logLevel = originalLogLevel
		logFormat = originalLogFormat
		radius = originalRadius
		minNeighbors = originalMinNeighbors
		retryBudget = originalRetryBudget
	}()

	tests := []struct {
		name         string
		logLevel     string
		logFormat    string
		radius       float64
		minNeighbors int
		retryBudget  int
		want         CLIOverrides
	}{
		{
			name:        "empty overrides",
			retryBudget: -1,
			want: CLIOverrides{
				RetryBudget: -1,
			},
		},
		{
			name:         "all overrides set",
			logLevel:     "debug",
			logFormat:    "text",
			radius:       0.9,
			minNeighbors: 7,
			retryBudget:  2,
			want: CLIOverrides{
				LogLevel:     "debug",
				LogFormat:    "text",
				Radius:       0.9,
				MinNeighbors: 7,
				RetryBudget:  2,
			},
		},
		{
			name:        "partial overrides",
			logLevel:    "warn",
			radius:      0.3,
			retryBudget: -1,
			want: CLIOverrides{
				LogLevel:    "warn",
				Radius:      0.3,
				RetryBudget: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logLevel = tt.logLevel
			logFormat = tt.logFormat
			radius = tt.radius
			minNeighbors = tt.minNeighbors
			retryBudget = tt.retryBudget

			got := GetCLIOverrides()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Profiling.Radius)
	assert.Equal(t, 1, cfg.Translation.RetryBudget)
}

func TestLoadConfig_OverridesApplied(t *testing.T) {
	originalCfgFile := cfgFile
	originalRadius := radius
	originalRetryBudget := retryBudget
	defer func() {
		cfgFile = originalCfgFile
		radius = originalRadius
		retryBudget = originalRetryBudget
	}()
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")
	radius = 1.2
	retryBudget = 0

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1.2, cfg.Profiling.Radius)
	assert.Equal(t, 0, cfg.Translation.RetryBudget)
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("region,amount\nnorth,10\nsouth,20\n"), 0o644))

	ds, err := loadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumRows())
	assert.Equal(t, []string{"region", "amount"}, ds.ColumnNames())
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := loadDataset(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dataset")
}
