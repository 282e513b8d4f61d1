package viewer

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes регистрирует маршруты viewer.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	route := func(name string, fn http.HandlerFunc) http.Handler {
		return Chain(
			Metrics(name),
			Recovery(h.logger),
			Logging(h.logger),
		)(fn)
	}

	mux.Handle("GET /{$}", route("page", h.Page))
	mux.Handle("GET /plot.png", route("plot_png", h.PlotPNG))
	mux.Handle("GET /plot.svg", route("plot_svg", h.PlotSVG))
	mux.Handle("GET /api/v1/stats", route("stats", h.Stats))
}

// RegisterServiceRoutes регистрирует служебные /healthz и /metrics.
// Они не проходят через Metrics и Logging.
func RegisterServiceRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

// Health отвечает 200 "ok".
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
