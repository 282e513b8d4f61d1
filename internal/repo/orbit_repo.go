package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/asteroidgraph/internal/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS orbit_batches (
	id          uuid PRIMARY KEY,
	source      text NOT NULL,
	row_count   integer NOT NULL,
	imported_at timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS orbits (
	batch_id uuid NOT NULL REFERENCES orbit_batches(id) ON DELETE CASCADE,
	row_num  integer NOT NULL,
	a        double precision NOT NULL,
	e        double precision NOT NULL,
	PRIMARY KEY (batch_id, row_num)
);
`

// Batch — один импорт таблицы.
type Batch struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	RowCount   int       `json:"row_count"`
	ImportedAt time.Time `json:"imported_at"`
}

// OrbitRepo — репозиторий таблиц (a, e).
type OrbitRepo struct {
	pool *pgxpool.Pool
}

// NewOrbitRepo создаёт новый OrbitRepo.
func NewOrbitRepo(pool *pgxpool.Pool) *OrbitRepo {
	return &OrbitRepo{pool: pool}
}

// EnsureSchema создаёт таблицы, если их ещё нет.
func (r *OrbitRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Import сохраняет таблицу одним batch в транзакции.
func (r *OrbitRepo) Import(ctx context.Context, source string, table *catalog.Table) (*Batch, error) {
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	batch := &Batch{
		ID:         uuid.New(),
		Source:     source,
		RowCount:   table.Len(),
		ImportedAt: time.Now().UTC(),
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO orbit_batches (id, source, row_count, imported_at) VALUES ($1, $2, $3, $4)`,
		batch.ID, batch.Source, batch.RowCount, batch.ImportedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert batch: %w", err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"orbits"},
		[]string{"batch_id", "row_num", "a", "e"},
		orbitRows(batch.ID, table),
	)
	if err != nil {
		return nil, fmt.Errorf("copy orbits: %w", err)
	}
	if int(n) != table.Len() {
		return nil, fmt.Errorf("copy orbits: wrote %d of %d rows", n, table.Len())
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return batch, nil
}

// Load читает таблицу batch в исходном порядке строк.
func (r *OrbitRepo) Load(ctx context.Context, batchID uuid.UUID) (*catalog.Table, error) {
	if _, err := r.GetBatch(ctx, batchID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT a, e FROM orbits WHERE batch_id = $1 ORDER BY row_num`,
		batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("load orbits: %w", err)
	}
	defer rows.Close()

	var a, e []float64
	for rows.Next() {
		var av, ev float64
		if err := rows.Scan(&av, &ev); err != nil {
			return nil, fmt.Errorf("scan orbit: %w", err)
		}
		a = append(a, av)
		e = append(e, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load orbits: %w", err)
	}

	return catalog.NewTable(a, e)
}

// GetBatch возвращает batch по ID.
func (r *OrbitRepo) GetBatch(ctx context.Context, id uuid.UUID) (*Batch, error) {
	var b Batch
	err := r.pool.QueryRow(ctx,
		`SELECT id, source, row_count, imported_at FROM orbit_batches WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Source, &b.RowCount, &b.ImportedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// ListBatches возвращает импорты, новые первыми.
func (r *OrbitRepo) ListBatches(ctx context.Context, limit int) ([]Batch, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, source, row_count, imported_at FROM orbit_batches ORDER BY imported_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.Source, &b.RowCount, &b.ImportedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// orbitRows отдаёт строки таблицы для COPY.
func orbitRows(batchID uuid.UUID, table *catalog.Table) pgx.CopyFromSource {
	return pgx.CopyFromSlice(table.Len(), func(i int) ([]any, error) {
		row := table.Row(i)
		return []any{batchID, i, row.A, row.E}, nil
	})
}
