package charts

import (
	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
	"gonum.org/v1/plot/vg"
)

// Dash patterns, in multiples of the line width.
var (
	Dashed = []float64{3.7, 1.6}
	Dotted = []float64{1, 1.65}
)

// Trace is one y field drawn against the chart's x field.
type Trace struct {
	// Y is the plotted field.
	Y models.Field
	// Dashes is the dash pattern scaled by the line width.
	Dashes []float64
}

// Spec describes one chart of the battery.
type Spec struct {
	// Name is the output file name without extension.
	Name string
	// Title is the chart title.
	Title string
	// X is the horizontal field.
	X models.Field
	// Traces lists the vertical fields; each group draws one series per trace.
	Traces []Trace
	// YLabel overrides the vertical axis label.
	YLabel string
	// Legend overrides the field named in series labels.
	Legend models.Field
	// MarkerSize overrides the renderer's marker size when non-zero.
	MarkerSize float64
	// Always renders the chart even when its fields are missing.
	Always bool
}

// Fields returns every field the chart reads.
func (s Spec) Fields() []models.Field {
	fields := []models.Field{s.X}
	for _, t := range s.Traces {
		fields = append(fields, t.Y)
	}
	return fields
}

// Battery is the fixed chart set rendered for every trial folder.
var Battery = []Spec{
	{
		Name:   "unity_vs_laser",
		Title:  "Unity theoretical vs laser experimental",
		X:      models.FieldTheoretical,
		Traces: []Trace{{Y: models.FieldMeasured}},
	},
	{
		Name:   "time_vs_unity",
		Title:  "Time vs unity theoretical",
		X:      models.FieldTime,
		Traces: []Trace{{Y: models.FieldTheoretical}},
	},
	{
		Name:   "time_vs_laser",
		Title:  "Time vs laser experimental",
		X:      models.FieldTime,
		Traces: []Trace{{Y: models.FieldMeasured}},
	},
	{
		Name:   "time_vs_dac_bits",
		Title:  "Time vs dac bits",
		X:      models.FieldTime,
		Traces: []Trace{{Y: models.FieldDACBits}},
	},
	{
		Name:       "laser_vs_force",
		Title:      "Laser experimental vs force",
		X:          models.FieldMeasured,
		Traces:     []Trace{{Y: models.FieldForce}},
		Legend:     models.FieldMeasured,
		MarkerSize: 3,
	},
	{
		Name:  "time_vs_experimental_vs_theoretical",
		Title: "Time vs laser experimental & unity theoretical",
		X:     models.FieldTime,
		Traces: []Trace{
			{Y: models.FieldMeasured, Dashes: Dashed},
			{Y: models.FieldTheoretical, Dashes: Dotted},
		},
		YLabel: "Measurements",
		Always: true,
	},
}

// Style holds the fixed presentation parameters of a chart.
type Style struct {
	// MarkerSize is the marker diameter in points.
	MarkerSize float64
	// LineWidth is the series line width in points.
	LineWidth float64
	// Width and Height are the figure size.
	Width, Height vg.Length
	// DPI is the raster resolution.
	DPI int
	// TitleSize, LabelSize and LegendSize are font sizes in points.
	TitleSize, LabelSize, LegendSize float64
}

// DefaultStyle returns the figure style used by all charts.
func DefaultStyle() Style {
	return Style{
		MarkerSize: 2,
		LineWidth:  0.8,
		Width:      10 * vg.Inch,
		Height:     5 * vg.Inch,
		DPI:        300,
		TitleSize:  14,
		LabelSize:  12,
		LegendSize: 10,
	}
}
