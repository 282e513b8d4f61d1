package plot

import (
	"fmt"
	"strings"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/overlay"
)

// Границы осей.
const (
	// XPadding расширяет диапазон по оси X с обеих сторон,
	// чтобы x1 == x2 не давал диапазон нулевой ширины.
	XPadding = 0.01

	YMin = 0.0
	YMax = 1.0
)

// Format — формат изображения.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat разбирает формат из строки (регистр не важен).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType возвращает MIME-тип формата.
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Options — параметры графика.
type Options struct {
	X1     float64
	X2     float64
	Width  int
	Height int
	Format Format
}

// DefaultOptions: диапазон 1..5.5 а.е., 1200x1000 пикселей, PNG.
func DefaultOptions() Options {
	return Options{
		X1:     1,
		X2:     5.5,
		Width:  1200,
		Height: 1000,
		Format: FormatPNG,
	}
}

// Kind — к чему относится элемент оверлея.
type Kind int

const (
	KindGroup Kind = iota
	KindPlanet
)

// Segment — отрезок в координатах данных.
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
	Kind   Kind
}

// Annotation — подпись в координатах данных.
type Annotation struct {
	Text string
	A    float64
	E    float64
	Kind Kind
}

// Layout — всё, что нужно нарисовать, уже обрезанное по видимому диапазону.
type Layout struct {
	XMin, XMax float64

	// Точки астероидов внутри [XMin, XMax] x [YMin, YMax].
	A []float64
	E []float64

	Segments    []Segment
	Annotations []Annotation
}

// XRange возвращает границы оси X для пары x1, x2.
// Порядок аргументов не важен.
func XRange(x1, x2 float64) (lo, hi float64) {
	lo, hi = min(x1, x2), max(x1, x2)
	return lo - XPadding, hi + XPadding
}

// ComputeLayout считает Layout для таблицы и набора оверлеев.
func ComputeLayout(t *catalog.Table, set overlay.Set, x1, x2 float64) Layout {
	lo, hi := min(x1, x2), max(x1, x2)
	xMin, xMax := XRange(x1, x2)

	l := Layout{XMin: xMin, XMax: xMax}

	a, e := t.A(), t.E()
	for i := range a {
		if a[i] >= xMin && a[i] <= xMax && e[i] >= YMin && e[i] <= YMax {
			l.A = append(l.A, a[i])
			l.E = append(l.E, e[i])
		}
	}

	for _, v := range set.Verticals {
		if inRange(v.A, xMin, xMax) {
			l.Segments = append(l.Segments, Segment{X0: v.A, Y0: YMin, X1: v.A, Y1: v.Height, Kind: KindGroup})
		}
	}

	for _, h := range set.Horizontals {
		from, to := max(h.From, xMin), min(h.To, xMax)
		if from <= to {
			l.Segments = append(l.Segments, Segment{X0: from, Y0: h.E, X1: to, Y1: h.E, Kind: KindGroup})
		}
	}

	for _, p := range set.Planets {
		if inRange(p.A, xMin, xMax) {
			l.Segments = append(l.Segments, Segment{X0: p.A, Y0: YMin, X1: p.A, Y1: YMax, Kind: KindPlanet})
		}
	}

	for _, g := range set.GroupLabels(lo, hi) {
		l.Annotations = append(l.Annotations, Annotation{Text: g.Name, A: g.A, E: g.E, Kind: KindGroup})
	}
	for _, p := range set.PlanetLabels(lo, hi) {
		l.Annotations = append(l.Annotations, Annotation{Text: p.Name, A: p.A, E: p.E, Kind: KindPlanet})
	}

	return l
}

func inRange(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}
