package charts

import (
	"bytes"
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/truegloryhair/commerce-reports/common"
)

const (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch

	barWidth = vg.Length(18)

	pngFormat = "png"
)

var ErrLabelMismatch = errors.New("charts: number of labels does not match number of values")

// BarChart is a single-series vertical bar chart over nominal categories.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Labels []string
	Values []float64
}

// RenderPNG draws the chart and returns the encoded image.
// Plotting errors, such as a chart without values, are returned unchanged.
func RenderPNG(c BarChart) ([]byte, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel

	bars, err := plotter.NewBarChart(plotter.Values(c.Values), barWidth)
	if err != nil {
		return nil, err
	}

	if len(c.Labels) != len(c.Values) {
		return nil, ErrLabelMismatch
	}

	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(c.Labels...)
	p.Y.Min = 0
	p.Y.Tick.Marker = shortTicks{}

	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	w, err := p.WriterTo(Width, Height, pngFormat)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// shortTicks labels the major ticks of plot.DefaultTicks in short form (1.5K).
type shortTicks struct{}

func (shortTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = common.FormatNumber(ticks[i].Value, 1)
		}
	}

	return ticks
}
