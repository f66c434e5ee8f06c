package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tabstat/domain/table"
)

// StatsWriter writes a StatisticsReport as CSV with the fixed header
// column,mean,median,mode. Floats use the shortest decimal form that
// round-trips exactly; a multi-valued mode is joined with ";" inside
// its field so it cannot collide with the CSV delimiter.
type StatsWriter struct{}

// NewStatsWriter creates a new statistics writer
func NewStatsWriter() *StatsWriter {
	return &StatsWriter{}
}

// Write creates (or overwrites) the file at path and writes one row per
// report entry, in report order.
func (w *StatsWriter) Write(report *table.StatisticsReport, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create statistics file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write([]string{"column", "mean", "median", "mode"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, entry := range report.Entries {
		record := []string{
			entry.Column,
			formatFloat(entry.Mean),
			formatFloat(entry.Median),
			formatModes(entry.Modes),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row for column %q: %w", entry.Column, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatModes(modes []float64) string {
	parts := make([]string, len(modes))
	for i, mode := range modes {
		parts[i] = formatFloat(mode)
	}
	return strings.Join(parts, ";")
}
