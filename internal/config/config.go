package config

import (
	"fmt"
	"os"
)

// Config holds the settings the pipeline runner needs. It is constructed
// from environment variables by the entry point; the processor itself
// never reads the environment.
type Config struct {
	InputPath string // CSV or XLSX file to analyze
	StatsPath string // destination for the exported statistics CSV
	PlotPath  string // destination for the box plot (extension picks the backend)
	LogLevel  string // ERROR, WARN, INFO or DEBUG
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	input := os.Getenv("TABSTAT_INPUT")
	if input == "" {
		return nil, fmt.Errorf("TABSTAT_INPUT is required")
	}

	return &Config{
		InputPath: input,
		StatsPath: getEnvOrDefault("TABSTAT_STATS_OUT", "output/statistics.csv"),
		PlotPath:  getEnvOrDefault("TABSTAT_PLOT_OUT", "output/data_boxplot.png"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
