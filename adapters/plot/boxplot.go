package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"tabstat/domain/table"
)

// ImageRenderer draws one box per numeric column and saves an image.
// The format is chosen by the output extension (png, svg, pdf, ...).
type ImageRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewImageRenderer creates an image renderer with default dimensions
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// Render draws the box plot and writes it to outputPath. Quartiles,
// whiskers at 1.5 IQR and outlier points follow the standard box-plot
// convention implemented by the plotter.
func (r *ImageRenderer) Render(ds *table.Dataset, outputPath string) error {
	p := plot.New()
	p.Title.Text = "Boxplot of Numerical Data"
	p.Y.Label.Text = "Value"

	var names []string
	for _, col := range ds.NumericColumns() {
		if len(col.Values) == 0 {
			continue
		}
		values := make(plotter.Values, len(col.Values))
		copy(values, col.Values)

		box, err := plotter.NewBoxPlot(vg.Points(20), float64(len(names)), values)
		if err != nil {
			return fmt.Errorf("failed to build box for column %q: %w", col.Name, err)
		}
		p.Add(box)
		names = append(names, col.Name)
	}

	if len(names) == 0 {
		return fmt.Errorf("no numeric values to plot")
	}
	p.NominalX(names...)

	if err := p.Save(r.Width, r.Height, outputPath); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
