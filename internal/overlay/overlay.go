// Package overlay описывает справочные линии и подписи, которые
// накладываются на диаграмму a–e: границы групп астероидов и орбиты планет.
//
// Набор по умолчанию встроен в бинарник (default.yaml) и может быть
// заменён пользовательским YAML-файлом той же структуры.
package overlay

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Vertical — вертикальная граница группы от e=0 до Height.
type Vertical struct {
	A      float64 `yaml:"a"`
	Height float64 `yaml:"height"`
}

// Horizontal — горизонтальная граница группы на уровне E между From и To.
type Horizontal struct {
	E    float64 `yaml:"e"`
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Label — подпись в координатах (a, e).
type Label struct {
	Name string  `yaml:"name"`
	A    float64 `yaml:"a"`
	E    float64 `yaml:"e"`
}

// Planet — орбита планеты; рисуется линией на всю высоту графика.
type Planet struct {
	Name string  `yaml:"name"`
	A    float64 `yaml:"a"`
}

// PlanetLabel — положение подписей планет относительно их линий.
type PlanetLabel struct {
	Offset float64 `yaml:"offset"`
	E      float64 `yaml:"e"`
}

// Colors — цвета в hex без '#'.
type Colors struct {
	Group  string `yaml:"group"`
	Planet string `yaml:"planet"`
	Points string `yaml:"points"`
}

// Set — полный набор справочных данных для графика.
type Set struct {
	Colors      Colors       `yaml:"colors"`
	Verticals   []Vertical   `yaml:"verticals"`
	Horizontals []Horizontal `yaml:"horizontals"`
	Groups      []Label      `yaml:"groups"`
	PlanetLabel PlanetLabel  `yaml:"planet_label"`
	Planets     []Planet     `yaml:"planets"`
}

// Default возвращает встроенный набор.
func Default() Set {
	set, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("overlay: embedded default is invalid: %v", err))
	}
	return set
}

// Load читает набор из YAML-файла.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read overlay: %w", err)
	}
	return Parse(data)
}

// Parse разбирает и валидирует YAML.
func Parse(data []byte) (Set, error) {
	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("%w: %v", ErrInvalidOverlay, err)
	}
	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Validate проверяет набор.
func (s Set) Validate() error {
	for name, c := range map[string]string{
		"group":  s.Colors.Group,
		"planet": s.Colors.Planet,
		"points": s.Colors.Points,
	} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("%w: color %s: %q is not a 6-digit hex", ErrInvalidOverlay, name, c)
		}
	}

	for i, v := range s.Verticals {
		if v.Height < 0 || v.Height > 1 {
			return fmt.Errorf("%w: vertical %d: height %v out of [0,1]", ErrInvalidOverlay, i, v.Height)
		}
	}

	for i, h := range s.Horizontals {
		if h.From > h.To {
			return fmt.Errorf("%w: horizontal %d: from %v > to %v", ErrInvalidOverlay, i, h.From, h.To)
		}
	}

	for i, g := range s.Groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group %d has empty name", ErrInvalidOverlay, i)
		}
	}

	for i, p := range s.Planets {
		if p.Name == "" {
			return fmt.Errorf("%w: planet %d has empty name", ErrInvalidOverlay, i)
		}
	}

	return nil
}

// Visible сообщает, попадает ли x в видимый диапазон [x1, x2).
// Подписи вне диапазона не рисуются, чтобы не вылезать за край графика.
func Visible(x, x1, x2 float64) bool {
	return x >= x1 && x < x2
}

// GroupLabels возвращает подписи групп, видимые в диапазоне [x1, x2).
func (s Set) GroupLabels(x1, x2 float64) []Label {
	var out []Label
	for _, g := range s.Groups {
		if Visible(g.A, x1, x2) {
			out = append(out, g)
		}
	}
	return out
}

// PlanetLabels возвращает подписи планет, видимые в диапазоне [x1, x2).
// Видимость определяется по орбите планеты, а подпись сдвинута вправо на Offset.
func (s Set) PlanetLabels(x1, x2 float64) []Label {
	var out []Label
	for _, p := range s.Planets {
		if Visible(p.A, x1, x2) {
			out = append(out, Label{
				Name: p.Name,
				A:    p.A + s.PlanetLabel.Offset,
				E:    s.PlanetLabel.E,
			})
		}
	}
	return out
}
