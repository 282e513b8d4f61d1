// Package telemetry обеспечивает наблюдаемость утилиты.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики (скачивания, рендеринг, viewer)
//
// CLI-команды пишут логи в stderr, чтобы stdout оставался для данных.
// В режиме serve метрики доступны на /metrics.
package telemetry
