package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/mq"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// Target получает новую таблицу после успешного обновления.
type Target interface {
	Set(t *catalog.Table)
}

// Publisher публикует событие об обновлении. *mq.Publisher удовлетворяет интерфейсу.
type Publisher interface {
	PublishCatalogRefreshed(ctx context.Context, payload mq.CatalogRefreshedPayload) error
}

// Fetcher скачивает каталог. *catalog.Downloader удовлетворяет интерфейсу.
type Fetcher interface {
	Download(ctx context.Context, url, path string) (*catalog.DownloadResult, error)
}

// Scheduler — периодическое обновление каталога.
type Scheduler struct {
	cronExpr  string
	url       string
	path      string
	parseOpts catalog.ParseOptions
	fetcher   Fetcher
	target    Target
	publisher Publisher
	logger    *slog.Logger

	cron *cron.Cron

	// Не даём двум обновлениям идти одновременно
	running sync.Mutex
}

// Config — конфигурация Scheduler.
type Config struct {
	CronExpr     string
	URL          string
	Path         string
	ParseOptions catalog.ParseOptions
	Fetcher      Fetcher
	Target       Target
	Publisher    Publisher // может быть nil
	Logger       *slog.Logger
}

// New создаёт Scheduler и проверяет cron-выражение.
func New(cfg Config) (*Scheduler, error) {
	if err := ValidateCronExpr(cfg.CronExpr); err != nil {
		return nil, err
	}
	if cfg.Fetcher == nil || cfg.Target == nil {
		return nil, fmt.Errorf("scheduler: fetcher and target are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cronExpr:  cfg.CronExpr,
		url:       cfg.URL,
		path:      cfg.Path,
		parseOpts: cfg.ParseOptions,
		fetcher:   cfg.Fetcher,
		target:    cfg.Target,
		publisher: cfg.Publisher,
		logger:    logger,
	}, nil
}

// Start запускает cron. Задачи выполняются с ctx; Stop останавливает cron.
func (s *Scheduler) Start(ctx context.Context) error {
	s.cron = cron.New(cron.WithParser(cronParser))

	_, err := s.cron.AddFunc(s.cronExpr, func() {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Error("catalog refresh failed, keeping previous table", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	s.cron.Start()

	next, _ := NextRun(s.cronExpr, time.Now())
	s.logger.Info("catalog refresh scheduled", "cron", s.cronExpr, "next_run", next)
	return nil
}

// Stop останавливает cron и ждёт завершения текущего обновления.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("catalog refresh stopped")
}

// Refresh выполняет одно обновление: download → parse → swap → publish.
//
// Ошибка публикации события не считается ошибкой обновления.
func (s *Scheduler) Refresh(ctx context.Context) error {
	s.running.Lock()
	defer s.running.Unlock()

	result, err := s.fetcher.Download(ctx, s.url, s.path)
	if err != nil {
		telemetry.CatalogRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("download: %w", err)
	}

	table, err := catalog.ReadFile(result.Path, s.parseOpts)
	if err != nil {
		telemetry.CatalogRefreshes.WithLabelValues("error").Inc()
		return fmt.Errorf("parse: %w", err)
	}

	s.target.Set(table)
	telemetry.CatalogRefreshes.WithLabelValues("ok").Inc()

	s.logger.Info("catalog refreshed",
		"path", result.Path,
		"bytes", result.Bytes,
		"rows", table.Len(),
	)

	if s.publisher != nil {
		err := s.publisher.PublishCatalogRefreshed(ctx, mq.CatalogRefreshedPayload{
			URL:   s.url,
			Path:  result.Path,
			Bytes: result.Bytes,
			Rows:  table.Len(),
		})
		if err != nil {
			s.logger.Warn("failed to publish catalog.refreshed", "error", err)
		}
	}

	return nil
}
