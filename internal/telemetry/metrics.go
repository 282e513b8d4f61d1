package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogDownloads — количество скачиваний каталога по результату (ok, error).
	CatalogDownloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asteroidgraph_catalog_downloads_total",
		Help: "Total MPCORB catalog downloads by outcome",
	}, []string{"outcome"})

	// CatalogBytes — суммарный объём скачанных данных.
	CatalogBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "asteroidgraph_catalog_bytes_total",
		Help: "Total bytes of MPCORB catalog downloaded",
	})

	// CatalogRows — количество строк в текущей таблице.
	CatalogRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "asteroidgraph_catalog_rows",
		Help: "Rows in the currently loaded asteroid table",
	})

	// PlotsRendered — количество отрисованных графиков по формату.
	PlotsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asteroidgraph_plots_rendered_total",
		Help: "Total plots rendered by format",
	}, []string{"format"})

	// PlotRenderSeconds — время отрисовки одного графика.
	PlotRenderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "asteroidgraph_plot_render_seconds",
		Help:    "Plot render duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// ViewerRequests — HTTP-запросы viewer по маршруту и коду ответа.
	ViewerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asteroidgraph_viewer_http_requests_total",
		Help: "Total HTTP requests handled by the viewer",
	}, []string{"route", "status"})

	// CatalogRefreshes — плановые обновления каталога по результату.
	CatalogRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asteroidgraph_catalog_refreshes_total",
		Help: "Total scheduled catalog refreshes by outcome",
	}, []string{"outcome"})
)
