package ports

import "tabstat/domain/table"

// BoxPlotRenderer draws one box per numeric column of the dataset and
// writes the result to outputPath.
type BoxPlotRenderer interface {
	Render(ds *table.Dataset, outputPath string) error
}
