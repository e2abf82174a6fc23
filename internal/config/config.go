package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete tool configuration
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Processing ProcessingConfig `yaml:"processing" envconfig:"PROCESSING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_if=Output file"`
}

// ProcessingConfig contains data file handling configuration
type ProcessingConfig struct {
	MaxFileSizeMB int64 `yaml:"max_file_size_mb" envconfig:"MAX_FILE_SIZE_MB" validate:"min=1"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stderr",
		},
		Processing: ProcessingConfig{
			MaxFileSizeMB: 64,
		},
	}
}

// Load assembles the configuration in three layers: built-in defaults, the
// optional YAML file at path, then TABSTAT_* environment variables. Later
// layers take precedence.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("TABSTAT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its declared constraints
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// MaxFileSizeBytes returns the processing size cap in bytes
func (c *Config) MaxFileSizeBytes() int64 {
	return c.Processing.MaxFileSizeMB * 1024 * 1024
}
