package viewer

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/overlay"
	"github.com/shaiso/asteroidgraph/internal/plot"
)

// Границы слайдеров.
const (
	SliderMin  = 0.0
	SliderMax  = 10.0
	SliderStep = 0.05
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// Handler — обработчик viewer с зависимостями.
type Handler struct {
	source  *TableSource
	overlay overlay.Set
	width   int
	height  int
	logger  *slog.Logger
}

// Config — конфигурация для создания Handler.
type Config struct {
	Source  *TableSource
	Overlay overlay.Set
	Width   int // default: 1200
	Height  int // default: 1000
	Logger  *slog.Logger
}

// NewHandler создаёт новый Handler.
func NewHandler(cfg Config) *Handler {
	defaults := plot.DefaultOptions()

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = defaults.Width
	}
	if height <= 0 {
		height = defaults.Height
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		source:  cfg.Source,
		overlay: cfg.Overlay,
		width:   width,
		height:  height,
		logger:  logger,
	}
}

// pageData — данные шаблона страницы.
type pageData struct {
	X1, X2         float64
	Min, Max, Step float64
	Rows           int
}

// Page отдаёт страницу со слайдерами.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	x1, x2, err := parseRange(r)
	if err != nil {
		BadRequest(w, err)
		return
	}

	table, _ := h.source.Get()

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, pageData{
		X1:   x1,
		X2:   x2,
		Min:  SliderMin,
		Max:  SliderMax,
		Step: SliderStep,
		Rows: table.Len(),
	})
	if err != nil {
		InternalError(w, h.logger, fmt.Errorf("render page: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// PlotPNG отдаёт график в PNG.
func (h *Handler) PlotPNG(w http.ResponseWriter, r *http.Request) {
	h.servePlot(w, r, plot.FormatPNG)
}

// PlotSVG отдаёт график в SVG.
func (h *Handler) PlotSVG(w http.ResponseWriter, r *http.Request) {
	h.servePlot(w, r, plot.FormatSVG)
}

// servePlot перерисовывает график на каждый запрос.
func (h *Handler) servePlot(w http.ResponseWriter, r *http.Request, format plot.Format) {
	x1, x2, err := parseRange(r)
	if err != nil {
		BadRequest(w, err)
		return
	}

	table, _ := h.source.Get()

	opts := plot.Options{
		X1:     x1,
		X2:     x2,
		Width:  h.width,
		Height: h.height,
		Format: format,
	}

	var buf bytes.Buffer
	if err := plot.Render(&buf, table, h.overlay, opts); err != nil {
		InternalError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// StatsResponse — сводка по текущей таблице.
type StatsResponse struct {
	catalog.Stats
	Columns  []string `json:"columns"`
	LoadedAt string   `json:"loaded_at"`
}

// Stats отдаёт сводку по таблице.
func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	table, loadedAt := h.source.Get()

	Success(w, StatsResponse{
		Stats:    table.Stats(),
		Columns:  table.Columns(),
		LoadedAt: loadedAt.UTC().Format(time.RFC3339),
	})
}

// parseRange читает x1 и x2 из query. Отсутствующие значения берутся по умолчанию.
func parseRange(r *http.Request) (x1, x2 float64, err error) {
	defaults := plot.DefaultOptions()

	x1, err = parseBound(r, "x1", defaults.X1)
	if err != nil {
		return 0, 0, err
	}
	x2, err = parseBound(r, "x2", defaults.X2)
	if err != nil {
		return 0, 0, err
	}
	return x1, x2, nil
}

func parseBound(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{param: name, msg: fmt.Sprintf("%s must be a number, got %q", name, raw)}
	}
	if v < SliderMin || v > SliderMax {
		return 0, &paramError{param: name, msg: fmt.Sprintf("%s must be within [%g, %g], got %g", name, SliderMin, SliderMax, v)}
	}
	return v, nil
}
