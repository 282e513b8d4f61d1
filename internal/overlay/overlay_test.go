package overlay

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	set := Default()

	if len(set.Verticals) != 11 {
		t.Errorf("expected 11 verticals, got %d", len(set.Verticals))
	}
	if len(set.Horizontals) != 4 {
		t.Errorf("expected 4 horizontals, got %d", len(set.Horizontals))
	}
	if len(set.Groups) != 8 {
		t.Errorf("expected 8 groups, got %d", len(set.Groups))
	}
	if len(set.Planets) != 6 {
		t.Errorf("expected 6 planets, got %d", len(set.Planets))
	}

	if set.Groups[0].Name != "Hungaria Group" || set.Groups[0].A != 1.72 || set.Groups[0].E != 0.02 {
		t.Errorf("unexpected first group: %+v", set.Groups[0])
	}
	if set.Verticals[9].A != 5.05 || set.Verticals[9].Height != 1 {
		t.Errorf("unexpected vertical 9: %+v", set.Verticals[9])
	}
	if set.PlanetLabel.Offset != 0.02 || set.PlanetLabel.E != 0.52 {
		t.Errorf("unexpected planet label: %+v", set.PlanetLabel)
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		x, x1, x2 float64
		want      bool
	}{
		{1.72, 1, 5.5, true},
		{0.387, 1, 5.5, false},
		// левая граница включена, правая нет
		{1, 1, 5.5, true},
		{5.5, 1, 5.5, false},
		// пустой диапазон
		{2, 2, 2, false},
	}

	for _, tt := range tests {
		if got := Visible(tt.x, tt.x1, tt.x2); got != tt.want {
			t.Errorf("Visible(%v, %v, %v) = %v, want %v", tt.x, tt.x1, tt.x2, got, tt.want)
		}
	}
}

func TestGroupLabels_DefaultRange(t *testing.T) {
	labels := Default().GroupLabels(1, 5.5)
	if len(labels) != 8 {
		t.Errorf("all 8 groups should be visible in [1, 5.5), got %d", len(labels))
	}

	labels = Default().GroupLabels(2, 3)
	names := map[string]bool{}
	for _, l := range labels {
		names[l.Name] = true
	}
	if len(labels) != 4 || !names["Flora Family"] || !names["Main Belt (zone III)"] {
		t.Errorf("unexpected labels in [2, 3): %v", labels)
	}
}

func TestPlanetLabels(t *testing.T) {
	labels := Default().PlanetLabels(1, 5.5)

	// Earth (1.0), Mars (1.52), Jupiter (5.20)
	if len(labels) != 3 {
		t.Fatalf("expected 3 planet labels, got %d: %v", len(labels), labels)
	}
	if labels[0].Name != "Earth" || math.Abs(labels[0].A-1.02) > 1e-9 || labels[0].E != 0.52 {
		t.Errorf("unexpected Earth label: %+v", labels[0])
	}
}

func TestPlanetLabels_NoneInRange(t *testing.T) {
	if labels := Default().PlanetLabels(6, 9); len(labels) != 0 {
		t.Errorf("expected no planet labels, got %v", labels)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("colors: [unclosed"))
	if !errors.Is(err, ErrInvalidOverlay) {
		t.Errorf("expected ErrInvalidOverlay, got %v", err)
	}
}

func TestParse_InvalidColor(t *testing.T) {
	data := []byte(`
colors: {group: "cyan", planet: "bf00bf", points: "0000ff"}
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrInvalidOverlay) {
		t.Errorf("expected ErrInvalidOverlay, got %v", err)
	}
}

func TestParse_InvalidHeight(t *testing.T) {
	data := []byte(`
colors: {group: "00bfbf", planet: "bf00bf", points: "0000ff"}
verticals:
  - {a: 2.0, height: 1.5}
`)
	_, err := Parse(data)
	if !errors.Is(err, ErrInvalidOverlay) {
		t.Errorf("expected ErrInvalidOverlay, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	data := []byte(`
colors: {group: "00bfbf", planet: "bf00bf", points: "0000ff"}
planet_label: {offset: 0.05, e: 0.5}
planets:
  - {name: Ceres, a: 2.77}
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Planets) != 1 || set.Planets[0].Name != "Ceres" {
		t.Errorf("unexpected planets: %v", set.Planets)
	}
	if len(set.Groups) != 0 {
		t.Errorf("expected no groups, got %d", len(set.Groups))
	}
}
