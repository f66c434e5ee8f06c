// Package processor owns the load → compute → visualize/export pipeline.
package processor

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"tabstat/adapters/csvfile"
	"tabstat/adapters/excel"
	"tabstat/adapters/plot"
	"tabstat/domain/core"
	"tabstat/domain/table"
	"tabstat/internal"
	"tabstat/internal/describe"
	"tabstat/ports"
)

// DefaultPlotPath is used when VisualizeData is called without an output path.
const DefaultPlotPath = "data_boxplot.png"

// Processor owns one Dataset and its derived StatisticsReport and exposes
// the pipeline operations over them. A Processor is not safe for concurrent
// use; callers that process files in parallel run one Processor each.
type Processor struct {
	logger  *internal.Logger
	readers map[string]ports.TableReader
	writer  *csvfile.StatsWriter

	dataset *table.Dataset
	report  *table.StatisticsReport
}

// New creates a processor with the default CSV/XLSX readers and plot
// backends. A nil logger gets an INFO-level default.
func New(logger *internal.Logger) *Processor {
	if logger == nil {
		logger = internal.NewLogger(internal.LogLevelInfo)
	}
	return &Processor{
		logger: logger,
		readers: map[string]ports.TableReader{
			".csv":  csvfile.NewReader(),
			".xlsx": excel.NewReader(),
		},
		writer: csvfile.NewStatsWriter(),
	}
}

// LoadData reads the file at path into a fresh Dataset, inferring one kind
// per column. The previous Dataset is only replaced after the whole file
// parses, so a failed load leaves existing state untouched. A successful
// load discards any previously computed report.
func (p *Processor) LoadData(path string) error {
	raw, err := p.readerFor(path).ReadTable(path)
	if err != nil {
		p.logger.Error("load failed for %s: %v", path, err)
		return core.NewDataLoadError(path, err)
	}

	ds, err := buildDataset(path, raw)
	if err != nil {
		p.logger.Error("load failed for %s: %v", path, err)
		return core.NewDataLoadError(path, err)
	}

	p.dataset = ds
	p.report = nil
	p.logger.Info("loaded %s: %d rows, %d columns (dataset %s)",
		path, ds.RowCount, len(ds.Columns), ds.ID)
	return nil
}

// ComputeStatistics computes mean, median and mode for every numeric
// column of the current Dataset and replaces the held report. A column
// with no numeric values (all cells missing) is skipped with a warning.
func (p *Processor) ComputeStatistics() error {
	if p.dataset == nil {
		return core.NewStateError("ComputeStatistics", "a loaded dataset")
	}

	report := &table.StatisticsReport{}
	for _, col := range p.dataset.Columns {
		if col.Kind != table.ColumnNumeric {
			continue
		}
		summary, err := describe.Describe(col.Values)
		if err != nil {
			p.logger.Warn("skipping column %q: %v", col.Name, err)
			continue
		}
		report.Entries = append(report.Entries, table.ColumnStats{
			Column: col.Name,
			Mean:   summary.Mean,
			Median: summary.Median,
			Modes:  summary.Modes,
		})
	}

	p.report = report
	p.logger.Info("computed statistics for %d of %d columns",
		report.Len(), len(p.dataset.Columns))
	return nil
}

// GetStatistics returns the current report. It fails until
// ComputeStatistics has succeeded for the current Dataset.
func (p *Processor) GetStatistics() (*table.StatisticsReport, error) {
	if p.report == nil {
		return nil, core.NewStateError("GetStatistics", "computed statistics")
	}
	return p.report, nil
}

// Dataset returns the currently loaded Dataset, or nil before any load.
func (p *Processor) Dataset() *table.Dataset {
	return p.dataset
}

// VisualizeData renders a box plot of the numeric columns. The backend is
// chosen by extension (.html → echarts page, anything else → gonum/plot
// image). An empty outputPath falls back to DefaultPlotPath. The numeric
// check runs before any file is created so a failure never leaves a
// partial artifact behind.
func (p *Processor) VisualizeData(outputPath string) error {
	if p.dataset == nil {
		return core.NewStateError("VisualizeData", "a loaded dataset")
	}
	if outputPath == "" {
		outputPath = DefaultPlotPath
	}

	if len(p.dataset.NumericColumns()) == 0 {
		p.logger.Error("no numeric columns to plot in %s", p.dataset.SourcePath)
		return core.NewVisualizationError("no numeric columns to plot")
	}

	if err := p.rendererFor(outputPath).Render(p.dataset, outputPath); err != nil {
		p.logger.Error("visualization failed for %s: %v", outputPath, err)
		return core.NewVisualizationError(err.Error())
	}

	p.logger.Info("box plot written to %s", outputPath)
	return nil
}

// ExportStatistics writes the current report as CSV to outputPath,
// creating or overwriting the file.
func (p *Processor) ExportStatistics(outputPath string) error {
	if p.report == nil {
		return core.NewExportError(outputPath, fmt.Errorf("no statistics computed"))
	}

	if err := p.writer.Write(p.report, outputPath); err != nil {
		p.logger.Error("export failed for %s: %v", outputPath, err)
		return core.NewExportError(outputPath, err)
	}

	p.logger.Info("statistics exported to %s (%d columns)", outputPath, p.report.Len())
	return nil
}

func (p *Processor) readerFor(path string) ports.TableReader {
	ext := strings.ToLower(filepath.Ext(path))
	if reader, ok := p.readers[ext]; ok {
		return reader
	}
	return p.readers[".csv"]
}

func (p *Processor) rendererFor(path string) ports.BoxPlotRenderer {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return plot.NewHTMLRenderer()
	}
	return plot.NewImageRenderer()
}

// buildDataset infers one kind per column and materializes typed values.
func buildDataset(path string, raw *ports.RawTable) (*table.Dataset, error) {
	if len(raw.Headers) == 0 {
		return nil, fmt.Errorf("no columns to parse")
	}

	columns := make([]table.Column, len(raw.Headers))
	allMissing := true
	for i, name := range raw.Headers {
		columns[i] = buildColumn(name, raw.Rows, i)
		if columns[i].Missing < len(raw.Rows) {
			allMissing = false
		}
	}
	if allMissing {
		return nil, fmt.Errorf("all values in the dataset are empty")
	}

	return &table.Dataset{
		ID:         core.NewID(),
		SourcePath: path,
		Columns:    columns,
		RowCount:   len(raw.Rows),
	}, nil
}

// buildColumn classifies one column as numeric when every non-empty cell
// parses as a float, text otherwise. Empty cells count as missing either
// way. A column with no non-empty cells stays numeric with zero values so
// the compute stage can skip it with a warning.
func buildColumn(name string, rows [][]string, idx int) table.Column {
	col := table.Column{Name: name}
	numeric := true
	var values []float64
	var text []string

	for _, row := range rows {
		cell := ""
		if idx < len(row) {
			cell = strings.TrimSpace(row[idx])
		}
		if cell == "" {
			col.Missing++
			continue
		}
		text = append(text, cell)
		if numeric {
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				values = append(values, v)
			} else {
				numeric = false
			}
		}
	}

	if numeric {
		col.Kind = table.ColumnNumeric
		col.Values = values
	} else {
		col.Kind = table.ColumnText
		col.Text = text
	}
	return col
}
