package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Scan settings
	FolderPath string // Directory containing the delimited data files
	FileSuffix string // Filename suffix filter (e.g. ".csv")
	RulesPath  string // Optional YAML file with extraction rules

	// Shift window (blank means "not supplied")
	CompletionTime string
	StartTime      string

	// Output
	OutputPath string // Plain-text summary report
	ExportPath string // CSV export, empty disables

	// Run history
	HistoryPath string // BoltDB file, empty disables

	// ClickHouse sink
	ClickHouseEnabled bool
	ClickHouseHost    string
	ClickHousePort    int
	ClickHouseDB      string

	// Observability
	LogLevel        string
	LogFile         string
	TracingEnabled  bool
	TracingEndpoint string
	TracingProtocol string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		FolderPath: getEnv("FOLDER_PATH", "."),
		FileSuffix: getEnv("FILE_SUFFIX", ".csv"),
		RulesPath:  getEnv("RULES_PATH", ""),

		CompletionTime: getEnv("COMPLETION_TIME", ""),
		StartTime:      getEnv("START_TIME", ""),

		OutputPath: getEnv("OUTPUT_PATH", "total_test_time.txt"),
		ExportPath: getEnv("EXPORT_PATH", ""),

		HistoryPath: getEnv("HISTORY_PATH", ""),

		ClickHouseEnabled: getEnvBool("CLICKHOUSE_ENABLED", false),
		ClickHouseHost:    getEnv("CLICKHOUSE_HOST", "localhost"),
		ClickHousePort:    getEnvInt("CLICKHOUSE_PORT", 9000),
		ClickHouseDB:      getEnv("CLICKHOUSE_DB", "testtimes"),

		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
		TracingEnabled:  getEnvBool("TRACING_ENABLED", false),
		TracingEndpoint: getEnv("TRACING_ENDPOINT", ""),
		TracingProtocol: getEnv("TRACING_PROTOCOL", "grpc"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.FolderPath == "" {
		return fmt.Errorf("FOLDER_PATH is required")
	}
	if !strings.HasPrefix(c.FileSuffix, ".") {
		return fmt.Errorf("FILE_SUFFIX must start with a dot, got %q", c.FileSuffix)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if c.ClickHouseEnabled {
		if c.ClickHouseHost == "" {
			return fmt.Errorf("CLICKHOUSE_HOST is required when the ClickHouse sink is enabled")
		}
		if c.ClickHousePort <= 0 || c.ClickHousePort > 65535 {
			return fmt.Errorf("CLICKHOUSE_PORT must be between 1 and 65535")
		}
		if c.ClickHouseDB == "" {
			return fmt.Errorf("CLICKHOUSE_DB is required when the ClickHouse sink is enabled")
		}
	}
	if c.TracingEnabled && c.TracingProtocol != "grpc" && c.TracingProtocol != "http" {
		return fmt.Errorf("TRACING_PROTOCOL must be 'grpc' or 'http'")
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
