package charts

import (
	"bufio"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Grays is the grayscale color cycle, advanced once per series.
var Grays = []color.Color{
	color.Gray{Y: 0},
	color.Gray{Y: 102},
	color.Gray{Y: 153},
	color.Gray{Y: 178},
}

// Renderer draws chart specs to PNG and PDF files.
type Renderer struct {
	style Style
	log   zerolog.Logger
}

// NewRenderer creates a renderer with the given style.
func NewRenderer(style Style, logger zerolog.Logger) *Renderer {
	return &Renderer{style: style, log: logger}
}

// RenderAll renders every battery chart whose fields are present in c and
// returns the names of the charts written to dir.
func (r *Renderer) RenderAll(c *models.Consolidated, dir string) ([]string, error) {
	var written []string
	for _, spec := range Battery {
		if !spec.Always && !c.Has(spec.Fields()...) {
			r.log.Debug().Str("chart", spec.Name).Msg("Skipping chart, columns missing")
			continue
		}
		if err := r.Render(spec, c, dir); err != nil {
			return written, fmt.Errorf("chart %s: %w", spec.Name, err)
		}
		written = append(written, spec.Name)
	}
	return written, nil
}

// Render draws one chart and writes <dir>/<name>.png and <dir>/<name>.pdf.
func (r *Renderer) Render(spec Spec, c *models.Consolidated, dir string) error {
	p, err := r.Build(spec, c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	base := filepath.Join(dir, spec.Name)
	if err := r.savePNG(p, base+".png"); err != nil {
		return err
	}
	if err := p.Save(r.style.Width, r.style.Height, base+".pdf"); err != nil {
		return fmt.Errorf("save pdf: %w", err)
	}
	r.log.Debug().Str("chart", spec.Name).Str("dir", dir).Msg("Chart written")
	return nil
}

// Build lays out the plot for spec without writing it.
func (r *Renderer) Build(spec Spec, c *models.Consolidated) (*plot.Plot, error) {
	p := plot.New()
	r.applyStyle(p)

	p.Title.Text = spec.Title
	p.X.Label.Text = spec.X.Label()
	p.Y.Label.Text = spec.YLabel
	if p.Y.Label.Text == "" && len(spec.Traces) > 0 {
		p.Y.Label.Text = spec.Traces[0].Y.Label()
	}

	markerSize := r.style.MarkerSize
	if spec.MarkerSize > 0 {
		markerSize = spec.MarkerSize
	}

	present := c.Has(spec.Fields()...)
	series := 0
	for i, g := range c.Groups() {
		if !present {
			break
		}
		marker := MarkerFor(i)
		xs := g.Series(spec.X)
		for _, tr := range spec.Traces {
			pts := points(xs, g.Series(tr.Y))
			if len(pts) == 0 {
				continue
			}
			line, scatter, err := plotter.NewLinePoints(pts)
			if err != nil {
				return nil, err
			}
			col := Grays[series%len(Grays)]
			series++

			line.LineStyle.Color = col
			line.LineStyle.Width = vg.Points(r.style.LineWidth)
			line.LineStyle.Dashes = dashes(tr.Dashes, r.style.LineWidth)
			scatter.GlyphStyle = draw.GlyphStyle{
				Color:  col,
				Radius: vg.Points(markerSize / 2),
				Shape:  marker,
			}

			legend := tr.Y
			if spec.Legend != "" {
				legend = spec.Legend
			}
			p.Add(line, scatter)
			p.Legend.Add(fmt.Sprintf("%s (%s)", Capitalize(string(legend)), g.Frequency), line, scatter)
		}
	}

	zeroAxis(&p.X)
	zeroAxis(&p.Y)
	return p, nil
}

func (r *Renderer) applyStyle(p *plot.Plot) {
	serif := func(size float64) font.Font {
		return font.Font{Typeface: "Liberation", Variant: "Serif", Size: font.Length(size)}
	}
	p.Title.TextStyle.Font = serif(r.style.TitleSize)
	p.X.Label.TextStyle.Font = serif(r.style.LabelSize)
	p.Y.Label.TextStyle.Font = serif(r.style.LabelSize)
	p.X.Tick.Label.Font = serif(r.style.LegendSize)
	p.Y.Tick.Label.Font = serif(r.style.LegendSize)
	p.Legend.TextStyle.Font = serif(r.style.LegendSize)
	p.Legend.Top = true
	p.Legend.ThumbnailWidth = vg.Points(20)
}

// savePNG rasterizes p at the configured resolution.
func (r *Renderer) savePNG(p *plot.Plot, filename string) error {
	c := vgimg.NewWith(
		vgimg.UseWH(r.style.Width, r.style.Height),
		vgimg.UseDPI(r.style.DPI),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}

// points pairs xs and ys, leaving out pairs where either value is NaN.
func points(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) || math.IsInf(xs[i], 0) || math.IsInf(ys[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

func dashes(pattern []float64, width float64) []vg.Length {
	if len(pattern) == 0 {
		return nil
	}
	out := make([]vg.Length, len(pattern))
	for i, d := range pattern {
		out[i] = vg.Points(d * width)
	}
	return out
}

// zeroAxis pins the lower bound of an axis to zero.
func zeroAxis(a *plot.Axis) {
	a.Min = 0
	if math.IsInf(a.Max, 0) || math.IsNaN(a.Max) || a.Max <= 0 {
		a.Max = 1
	}
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}
