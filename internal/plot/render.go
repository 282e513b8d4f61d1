package plot

import (
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/overlay"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// Подписи графика.
const (
	Title  = "Asteroids Distribution"
	XLabel = "semimajor axis (AU)"
	YLabel = "eccentricity"
)

const (
	labelFontSize = 11
	pointRadius   = 1
	lineWidth     = 1
)

// Пунктир для границ групп.
var dottedLine = []float64{2, 3}

// Render рисует диаграмму a–e в w.
//
// Работает для любого числового диапазона, включая x1 == x2 и пустую таблицу.
func Render(w io.Writer, t *catalog.Table, set overlay.Set, opts Options) error {
	start := time.Now()

	provider, err := rendererProvider(opts.Format)
	if err != nil {
		return err
	}

	layout := ComputeLayout(t, set, opts.X1, opts.X2)
	ch := buildChart(layout, set.Colors, opts)

	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	telemetry.PlotsRendered.WithLabelValues(string(opts.Format)).Inc()
	telemetry.PlotRenderSeconds.Observe(time.Since(start).Seconds())

	return nil
}

func rendererProvider(f Format) (chart.RendererProvider, error) {
	switch f {
	case FormatPNG, "":
		return chart.PNG, nil
	case FormatSVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// buildChart собирает chart.Chart из Layout.
func buildChart(l Layout, colors overlay.Colors, opts Options) chart.Chart {
	groupColor := drawing.ColorFromHex(colors.Group)
	planetColor := drawing.ColorFromHex(colors.Planet)
	pointColor := drawing.ColorFromHex(colors.Points)

	// Серия по краям диапазона без линии и точек. go-chart требует хотя бы
	// одну не скрытую (Hidden) серию, а в пустом диапазоне может не оказаться
	// ни точек, ни линий оверлея.
	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "range",
			XValues: []float64{l.XMin, l.XMax},
			YValues: []float64{YMin, YMin},
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: drawing.ColorTransparent,
				DotWidth:    0,
			},
		},
	}

	for _, s := range l.Segments {
		style := chart.Style{
			StrokeWidth:     lineWidth,
			StrokeColor:     groupColor,
			StrokeDashArray: dottedLine,
		}
		if s.Kind == KindPlanet {
			style = chart.Style{
				StrokeWidth: lineWidth,
				StrokeColor: planetColor,
			}
		}
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{s.X0, s.X1},
			YValues: []float64{s.Y0, s.Y1},
			Style:   style,
		})
	}

	if len(l.A) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "asteroids",
			XValues: l.A,
			YValues: l.E,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    pointRadius,
				DotColor:    pointColor,
			},
		})
	}

	ch := chart.Chart{
		Title:      Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  XLabel,
			Range: &chart.ContinuousRange{Min: l.XMin, Max: l.XMax},
		},
		YAxis: chart.YAxis{
			Name:  YLabel,
			Range: &chart.ContinuousRange{Min: YMin, Max: YMax},
		},
		Series: series,
	}

	ch.Elements = []chart.Renderable{
		annotations(l, groupColor, planetColor),
	}

	return ch
}

// annotations рисует вертикальные подписи групп и планет.
//
// Координаты переводятся в пиксели так же, как это делает go-chart
// для осей с ContinuousRange: X от левого края canvas, Y от нижнего.
func annotations(l Layout, groupColor, planetColor drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(l.Annotations) == 0 || l.XMax <= l.XMin {
			return
		}

		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(labelFontSize)
		r.SetTextRotation(chart.DegreesToRadians(270))
		defer r.ClearTextRotation()

		xScale := float64(canvasBox.Width()) / (l.XMax - l.XMin)
		yScale := float64(canvasBox.Height()) / (YMax - YMin)

		for _, a := range l.Annotations {
			color := groupColor
			if a.Kind == KindPlanet {
				color = planetColor
			}
			r.SetFontColor(color)

			x := canvasBox.Left + int((a.A-l.XMin)*xScale)
			y := canvasBox.Bottom - int((a.E-YMin)*yScale)
			r.Text(a.Text, x, y)
		}
	}
}
