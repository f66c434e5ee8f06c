package plot

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"tabstat/domain/table"
)

// HTMLRenderer emits an interactive box plot as a standalone HTML page.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTML renderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render writes the chart to outputPath. Echarts expects pre-aggregated
// boxes, so each column is reduced to its five-number summary here.
func (r *HTMLRenderer) Render(ds *table.Dataset, outputPath string) error {
	var names []string
	var items []opts.BoxPlotData
	for _, col := range ds.NumericColumns() {
		if len(col.Values) == 0 {
			continue
		}
		names = append(names, col.Name)
		items = append(items, opts.BoxPlotData{Value: fiveNumberSummary(col.Values)})
	}
	if len(items) == 0 {
		return fmt.Errorf("no numeric values to plot")
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Boxplot of Numerical Data"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value"}),
	)
	box.SetXAxis(names).AddSeries("columns", items)

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer file.Close()

	if err := box.Render(file); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

// fiveNumberSummary returns [min, Q1, median, Q3, max] in the order
// echarts expects.
func fiveNumberSummary(values []float64) []float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return []float64{
		sorted[0],
		stat.Quantile(0.25, stat.Empirical, sorted, nil),
		stat.Quantile(0.5, stat.Empirical, sorted, nil),
		stat.Quantile(0.75, stat.Empirical, sorted, nil),
		sorted[len(sorted)-1],
	}
}
