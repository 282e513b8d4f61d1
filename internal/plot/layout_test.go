package plot

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/overlay"
)

func mustTable(t *testing.T, a, e []float64) *catalog.Table {
	t.Helper()
	table, err := catalog.NewTable(a, e)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	return table
}

func TestXRange(t *testing.T) {
	lo, hi := XRange(1, 5.5)
	if math.Abs(lo-0.99) > 1e-9 || math.Abs(hi-5.51) > 1e-9 {
		t.Errorf("unexpected range: %v..%v", lo, hi)
	}

	// x1 == x2 — диапазон всё равно ненулевой
	lo, hi = XRange(3, 3)
	if hi-lo <= 0 {
		t.Errorf("expected non-zero range for x1 == x2, got %v..%v", lo, hi)
	}

	// порядок аргументов не важен
	lo2, hi2 := XRange(5.5, 1)
	if lo2 >= hi2 {
		t.Errorf("expected ascending range, got %v..%v", lo2, hi2)
	}
}

func TestComputeLayout_FiltersPoints(t *testing.T) {
	table := mustTable(t,
		[]float64{0.5, 1.5, 2.7, 5.6, 3.0},
		[]float64{0.1, 0.2, 0.3, 0.1, 1.2},
	)

	l := ComputeLayout(table, overlay.Default(), 1, 5.5)

	// 0.5 и 5.6 вне оси X, e=1.2 вне оси Y
	if len(l.A) != 2 || len(l.E) != 2 {
		t.Fatalf("expected 2 points, got %d", len(l.A))
	}
	if l.A[0] != 1.5 || l.A[1] != 2.7 {
		t.Errorf("unexpected points: %v", l.A)
	}
}

func TestComputeLayout_DefaultRange(t *testing.T) {
	l := ComputeLayout(&catalog.Table{}, overlay.Default(), 1, 5.5)

	var groups, planets int
	for _, s := range l.Segments {
		switch s.Kind {
		case KindGroup:
			groups++
		case KindPlanet:
			planets++
			if s.Y0 != YMin || s.Y1 != YMax {
				t.Errorf("planet line should span full height: %+v", s)
			}
		}
	}

	// 11 вертикалей + 4 горизонтали
	if groups != 15 {
		t.Errorf("expected 15 group segments, got %d", groups)
	}
	// Earth, Mars, Jupiter
	if planets != 3 {
		t.Errorf("expected 3 planet lines, got %d", planets)
	}

	var groupLabels, planetLabels int
	for _, a := range l.Annotations {
		if a.Kind == KindGroup {
			groupLabels++
		} else {
			planetLabels++
		}
	}
	if groupLabels != 8 || planetLabels != 3 {
		t.Errorf("expected 8 group and 3 planet labels, got %d and %d", groupLabels, planetLabels)
	}
}

func TestComputeLayout_ClipsHorizontals(t *testing.T) {
	l := ComputeLayout(&catalog.Table{}, overlay.Default(), 3.0, 3.5)

	var found bool
	for _, s := range l.Segments {
		// e=0.35 от 2.7 до 3.3 обрезается слева
		if s.Kind == KindGroup && s.Y0 == 0.35 && s.Y1 == 0.35 && s.X1 == 3.3 {
			found = true
			if s.X0 != l.XMin {
				t.Errorf("segment should be clipped to %v, got %v", l.XMin, s.X0)
			}
		}
		if s.X0 < l.XMin || s.X1 > l.XMax {
			t.Errorf("segment outside visible range: %+v", s)
		}
	}
	if !found {
		t.Error("expected clipped e=0.35 segment")
	}
}

func TestComputeLayout_EqualBounds(t *testing.T) {
	table := mustTable(t, []float64{2.0, 2.005, 2.5}, []float64{0.1, 0.2, 0.3})

	l := ComputeLayout(table, overlay.Default(), 2.0, 2.0)

	if l.XMax <= l.XMin {
		t.Fatalf("expected non-empty axis range, got %v..%v", l.XMin, l.XMax)
	}
	if len(l.A) != 2 {
		t.Errorf("expected 2 points within padding, got %d", len(l.A))
	}
	// [2, 2) пуст — подписей нет
	if len(l.Annotations) != 0 {
		t.Errorf("expected no annotations, got %v", l.Annotations)
	}
}

func TestComputeLayout_ReversedBounds(t *testing.T) {
	table := mustTable(t, []float64{1.9, 2.77, 3.95}, []float64{0.08, 0.08, 0.2})

	forward := ComputeLayout(table, overlay.Default(), 1, 5.5)
	reversed := ComputeLayout(table, overlay.Default(), 5.5, 1)

	// x1 > x2 означает тот же диапазон, ось не переворачивается
	if reversed.XMin != forward.XMin || reversed.XMax != forward.XMax {
		t.Errorf("expected axis %v..%v, got %v..%v", forward.XMin, forward.XMax, reversed.XMin, reversed.XMax)
	}
	if len(reversed.Annotations) == 0 {
		t.Fatal("expected labels for reversed bounds")
	}
	if !reflect.DeepEqual(reversed.Annotations, forward.Annotations) {
		t.Errorf("labels differ:\n%v\n%v", reversed.Annotations, forward.Annotations)
	}
	if !reflect.DeepEqual(reversed.Segments, forward.Segments) {
		t.Error("segments differ for reversed bounds")
	}
	if len(reversed.A) != 3 {
		t.Errorf("expected 3 points, got %d", len(reversed.A))
	}
}

func TestComputeLayout_OuterPlanets(t *testing.T) {
	l := ComputeLayout(&catalog.Table{}, overlay.Default(), 0, 10)

	var planetLabels []string
	for _, a := range l.Annotations {
		if a.Kind == KindPlanet {
			planetLabels = append(planetLabels, a.Text)
		}
	}
	if len(planetLabels) != 6 {
		t.Errorf("expected all 6 planets in [0, 10), got %v", planetLabels)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("SVG")
	if err != nil || f != FormatSVG {
		t.Errorf("expected svg, got %q (%v)", f, err)
	}

	if _, err := ParseFormat("gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}

	if FormatSVG.ContentType() != "image/svg+xml" || FormatPNG.ContentType() != "image/png" {
		t.Error("unexpected content types")
	}
}
