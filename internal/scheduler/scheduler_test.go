package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/mq"
)

// fakeFetcher пишет заданное содержимое в path вместо скачивания.
type fakeFetcher struct {
	content string
	err     error
	calls   int
}

func (f *fakeFetcher) Download(_ context.Context, _, path string) (*catalog.DownloadResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
		return nil, err
	}
	return &catalog.DownloadResult{Path: path, Bytes: int64(len(f.content)), Status: 200}, nil
}

type fakeTarget struct {
	table *catalog.Table
	sets  int
}

func (t *fakeTarget) Set(table *catalog.Table) {
	t.table = table
	t.sets++
}

type fakePublisher struct {
	payloads []mq.CatalogRefreshedPayload
	err      error
}

func (p *fakePublisher) PublishCatalogRefreshed(_ context.Context, payload mq.CatalogRefreshedPayload) error {
	p.payloads = append(p.payloads, payload)
	return p.err
}

func catalogLine(a, e float64) string {
	b := []byte(strings.Repeat(" ", 160))
	copy(b[70:79], fmt.Sprintf("%9.7f", e))
	copy(b[92:103], fmt.Sprintf("%11.7f", a))
	return string(b)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestScheduler(t *testing.T, fetcher Fetcher, target Target, pub Publisher) *Scheduler {
	t.Helper()
	s, err := New(Config{
		CronExpr:     "@daily",
		URL:          "http://example.invalid/MPCORB.DAT",
		Path:         filepath.Join(t.TempDir(), catalog.DefaultFile),
		ParseOptions: catalog.ParseOptions{},
		Fetcher:      fetcher,
		Target:       target,
		Publisher:    pub,
		Logger:       discardLogger(),
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	return s
}

func TestRefresh_Success(t *testing.T) {
	fetcher := &fakeFetcher{content: catalogLine(2.77, 0.08) + "\n" + catalogLine(5.2, 0.05) + "\n"}
	target := &fakeTarget{}
	pub := &fakePublisher{}

	s := newTestScheduler(t, fetcher, target, pub)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if target.sets != 1 || target.table.Len() != 2 {
		t.Fatalf("expected table with 2 rows to be set, got sets=%d", target.sets)
	}
	if len(pub.payloads) != 1 || pub.payloads[0].Rows != 2 {
		t.Errorf("expected one refreshed event with 2 rows, got %v", pub.payloads)
	}
}

func TestRefresh_DownloadErrorKeepsTable(t *testing.T) {
	fetcher := &fakeFetcher{err: catalog.ErrBadStatus}
	target := &fakeTarget{}
	pub := &fakePublisher{}

	s := newTestScheduler(t, fetcher, target, pub)

	err := s.Refresh(context.Background())
	if !errors.Is(err, catalog.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
	if target.sets != 0 {
		t.Error("table should not be replaced on failure")
	}
	if len(pub.payloads) != 0 {
		t.Error("no event should be published on failure")
	}
}

func TestRefresh_ParseErrorKeepsTable(t *testing.T) {
	fetcher := &fakeFetcher{content: "<html>maintenance</html>\n"}
	target := &fakeTarget{}

	s := newTestScheduler(t, fetcher, target, nil)

	err := s.Refresh(context.Background())
	if !errors.Is(err, catalog.ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
	if target.sets != 0 {
		t.Error("table should not be replaced on parse failure")
	}
}

func TestRefresh_PublishErrorIgnored(t *testing.T) {
	fetcher := &fakeFetcher{content: catalogLine(2.5, 0.1) + "\n"}
	target := &fakeTarget{}
	pub := &fakePublisher{err: errors.New("broker down")}

	s := newTestScheduler(t, fetcher, target, pub)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("publish failure should not fail refresh: %v", err)
	}
	if target.sets != 1 {
		t.Error("table should be replaced")
	}
}

func TestNew_InvalidCron(t *testing.T) {
	_, err := New(Config{
		CronExpr: "every day",
		Fetcher:  &fakeFetcher{},
		Target:   &fakeTarget{},
	})
	if err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

func TestNew_MissingDeps(t *testing.T) {
	if _, err := New(Config{CronExpr: "@daily"}); err == nil {
		t.Error("expected error without fetcher and target")
	}
}

func TestStartStop(t *testing.T) {
	s := newTestScheduler(t, &fakeFetcher{}, &fakeTarget{}, nil)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Stop()
}

func TestNextRun(t *testing.T) {
	from := time.Date(2024, 3, 10, 5, 30, 0, 0, time.UTC)

	next, err := NextRun("0 6 * * *", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}
}

func TestValidateCronExpr(t *testing.T) {
	for _, expr := range []string{"0 6 * * *", "@daily", "*/30 * * * *"} {
		if err := ValidateCronExpr(expr); err != nil {
			t.Errorf("%q should be valid: %v", expr, err)
		}
	}
	if err := ValidateCronExpr("61 * * * *"); err == nil {
		t.Error("expected error for minute 61")
	}
}
