package viewer

import (
	"sync"
	"time"

	"github.com/shaiso/asteroidgraph/internal/catalog"
	"github.com/shaiso/asteroidgraph/internal/telemetry"
)

// TableSource хранит текущую таблицу. Безопасен для конкурентного доступа.
type TableSource struct {
	mu       sync.RWMutex
	table    *catalog.Table
	loadedAt time.Time
}

// NewTableSource создаёт TableSource с начальной таблицей.
func NewTableSource(t *catalog.Table) *TableSource {
	s := &TableSource{}
	s.Set(t)
	return s
}

// Get возвращает текущую таблицу и время её загрузки.
func (s *TableSource) Get() (*catalog.Table, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.loadedAt
}

// Set подменяет таблицу.
func (s *TableSource) Set(t *catalog.Table) {
	if t == nil {
		t = &catalog.Table{}
	}

	s.mu.Lock()
	s.table = t
	s.loadedAt = time.Now()
	s.mu.Unlock()

	telemetry.CatalogRows.Set(float64(t.Len()))
}
