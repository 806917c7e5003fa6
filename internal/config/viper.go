// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Limits is the authoritative tonnage range applied by the validator.
// Every entry path (CLI, CSV ingest, JSON load, database pull) goes through
// the same range check.
type Limits struct {
	PredictedMin float64 `mapstructure:"predicted_min" yaml:"predicted_min"`
	PredictedMax float64 `mapstructure:"predicted_max" yaml:"predicted_max"`
	HarvestedMin float64 `mapstructure:"harvested_min" yaml:"harvested_min"`
	HarvestedMax float64 `mapstructure:"harvested_max" yaml:"harvested_max"`
}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Limits Limits `mapstructure:"limits" yaml:"limits"`

	Data struct {
		Directory        string `mapstructure:"directory" yaml:"directory"`
		RecordsFile      string `mapstructure:"records_file" yaml:"records_file"`
		ReportsDirectory string `mapstructure:"reports_directory" yaml:"reports_directory"`
	} `mapstructure:"data" yaml:"data"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Database struct {
		DSN string `mapstructure:"dsn" yaml:"-"` // Never serialize connection credentials
	} `mapstructure:"database" yaml:"database"`
}

// RecordsPath returns the full path of the JSON records file.
func (c *Config) RecordsPath() string {
	return filepath.Join(c.Data.Directory, c.Data.RecordsFile)
}

// ReportsPath returns the directory generated reports are written to.
func (c *Config) ReportsPath() string {
	return filepath.Join(c.Data.Directory, c.Data.ReportsDirectory)
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.harvest-csv")
	v.AddConfigPath(".harvest-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("HARVEST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The database DSN commonly arrives via DATABASE_URL in deployments
	if err := v.BindEnv("database.dsn", "HARVEST_DATABASE_DSN", "DATABASE_URL"); err != nil {
		fmt.Printf("Warning: failed to bind database DSN environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Tonnage limit defaults
	v.SetDefault("limits.predicted_min", 0.0)
	v.SetDefault("limits.predicted_max", 100000.0)
	v.SetDefault("limits.harvested_min", 0.0)
	v.SetDefault("limits.harvested_max", 100000.0)

	// Data defaults
	v.SetDefault("data.directory", "data")
	v.SetDefault("data.records_file", "harvests.json")
	v.SetDefault("data.reports_directory", "reports")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Database defaults
	v.SetDefault("database.dsn", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate tonnage limits
	if config.Limits.PredictedMin > config.Limits.PredictedMax {
		return fmt.Errorf("limits.predicted_min (%v) exceeds limits.predicted_max (%v)",
			config.Limits.PredictedMin, config.Limits.PredictedMax)
	}
	if config.Limits.HarvestedMin > config.Limits.HarvestedMax {
		return fmt.Errorf("limits.harvested_min (%v) exceeds limits.harvested_max (%v)",
			config.Limits.HarvestedMin, config.Limits.HarvestedMax)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
