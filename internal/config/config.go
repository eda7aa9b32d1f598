// Package config provides configuration structures and loading for the
// data-analysis backend.
package config

// Config represents the complete application configuration.
type Config struct {
	Database    DatabaseConfig    `yaml:"database" mapstructure:"database"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Profiling   ProfilingConfig   `yaml:"profiling" mapstructure:"profiling"`
	Translation TranslationConfig `yaml:"translation" mapstructure:"translation"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
}

// DatabaseConfig represents the MySQL connection used as the query store.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// LLMConfig represents the language-completion provider settings.
// Any OpenAI-compatible chat-completions endpoint works.
type LLMConfig struct {
	BaseURL        string  `yaml:"base_url" mapstructure:"base_url"`
	APIKey         string  `yaml:"api_key" mapstructure:"api_key"`
	Model          string  `yaml:"model" mapstructure:"model"`
	TimeoutSeconds int     `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Temperature    float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxTokens      int     `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ProfilingConfig represents defaults for density-based outlier detection.
type ProfilingConfig struct {
	Radius       float64 `yaml:"radius" mapstructure:"radius"`               // neighborhood radius in standardized space
	MinNeighbors int     `yaml:"min_neighbors" mapstructure:"min_neighbors"` // minimum neighbors for a core point
}

// TranslationConfig represents retry behavior for query translation.
type TranslationConfig struct {
	RetryBudget      int     `yaml:"retry_budget" mapstructure:"retry_budget"` // additional attempts after the first
	Temperature      float64 `yaml:"temperature" mapstructure:"temperature"`
	RetryTemperature float64 `yaml:"retry_temperature" mapstructure:"retry_temperature"`
	MaxTokens        int     `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:               "localhost",
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     10,
			MaxIdleConnections: 5,
		},
		LLM: LLMConfig{
			BaseURL:        "https://api.openai.com/v1",
			TimeoutSeconds: 60,
			Temperature:    0.1,
			MaxTokens:      700,
		},
		Profiling: ProfilingConfig{
			Radius:       0.5,
			MinNeighbors: 5,
		},
		Translation: TranslationConfig{
			RetryBudget:      1,
			Temperature:      0.1,
			RetryTemperature: 0.15,
			MaxTokens:        700,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}
