package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// DefaultURL — адрес каталога MPCORB.DAT на сайте Minor Planet Center.
const DefaultURL = "https://minorplanetcenter.net/iau/MPCORB/MPCORB.DAT"

// DefaultFile — имя локального файла каталога.
const DefaultFile = "MPCORB.DAT"

// Полный каталог около 200 МБ, поэтому таймаут большой.
const defaultDownloadTimeout = 10 * time.Minute

// Права скачанного каталога, как у файла из os.Create до umask.
const catalogFileMode = 0o644

// DownloadResult — итог скачивания.
type DownloadResult struct {
	Path     string        `json:"path"`
	Bytes    int64         `json:"bytes"`
	Status   int           `json:"status"`
	Duration time.Duration `json:"duration"`
}

// Downloader скачивает каталог по HTTP.
type Downloader struct {
	client  *http.Client
	logger  *slog.Logger
	timeout time.Duration
}

// DownloaderConfig — конфигурация Downloader.
type DownloaderConfig struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Timeout    time.Duration // default: 10 минут
}

// NewDownloader создаёт Downloader.
func NewDownloader(cfg DownloaderConfig) *Downloader {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}

	return &Downloader{
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
}

// Download выполняет GET url и записывает тело ответа в path.
//
// Тело пишется во временный файл рядом с path и переименовывается
// только после успешного завершения, поэтому оборванная загрузка
// не портит уже существующий каталог.
func (d *Downloader) Download(ctx context.Context, url, path string) (*DownloadResult, error) {
	start := time.Now()

	result, err := d.download(ctx, url, path)
	if err != nil {
		telemetry.CatalogDownloads.WithLabelValues("error").Inc()
		d.logger.Error("catalog download failed", "url", url, "error", err)
		return nil, err
	}

	result.Duration = time.Since(start)
	telemetry.CatalogDownloads.WithLabelValues("ok").Inc()
	telemetry.CatalogBytes.Add(float64(result.Bytes))

	d.logger.Info("catalog downloaded",
		"url", url,
		"path", result.Path,
		"bytes", result.Bytes,
		"duration", result.Duration,
	)
	return result, nil
}

func (d *Downloader) download(ctx context.Context, url, path string) (*DownloadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrDownload, err)
	}

	d.logger.Debug("downloading catalog", "url", url)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrBadStatus, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.part")
	if err != nil {
		return nil, fmt.Errorf("%w: create temp file: %v", ErrDownload, err)
	}
	tmpName := tmp.Name()

	n, copyErr := io.Copy(tmp, resp.Body)
	if copyErr == nil {
		// CreateTemp создаёт файл с правами 0600
		copyErr = tmp.Chmod(catalogFileMode)
	}
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmpName)
		if copyErr != nil {
			return nil, fmt.Errorf("%w: write catalog: %v", ErrDownload, copyErr)
		}
		return nil, fmt.Errorf("%w: close temp file: %v", ErrDownload, closeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("%w: rename: %v", ErrDownload, err)
	}

	return &DownloadResult{
		Path:   path,
		Bytes:  n,
		Status: resp.StatusCode,
	}, nil
}
