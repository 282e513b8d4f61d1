package catalog

import (
	"errors"
	"testing"
)

func TestNewTable_Mismatch(t *testing.T) {
	_, err := NewTable([]float64{1, 2}, []float64{0.1})
	if !errors.Is(err, ErrColumnMismatch) {
		t.Errorf("expected ErrColumnMismatch, got %v", err)
	}
}

func TestTable_Stats(t *testing.T) {
	table, err := NewTable([]float64{2.5, 1.8, 5.2}, []float64{0.1, 0.4, 0.05})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := table.Stats()
	if s.Count != 3 {
		t.Errorf("expected count 3, got %d", s.Count)
	}
	if s.MinA != 1.8 || s.MaxA != 5.2 {
		t.Errorf("unexpected a range: %v..%v", s.MinA, s.MaxA)
	}
	if s.MinE != 0.05 || s.MaxE != 0.4 {
		t.Errorf("unexpected e range: %v..%v", s.MinE, s.MaxE)
	}
}

func TestTable_StatsEmpty(t *testing.T) {
	s := (&Table{}).Stats()
	if s != (Stats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestTable_Filter(t *testing.T) {
	table, _ := NewTable([]float64{0.9, 1.0, 2.5, 5.5, 6.0}, []float64{0.1, 0.2, 0.3, 0.4, 0.5})

	filtered := table.Filter(1.0, 5.5)
	if filtered.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", filtered.Len())
	}
	if filtered.E()[0] != 0.2 || filtered.E()[2] != 0.4 {
		t.Errorf("unexpected e column: %v", filtered.E())
	}

	// Исходная таблица не меняется
	if table.Len() != 5 {
		t.Errorf("source table modified: %d rows", table.Len())
	}
}

func TestTable_NilSafe(t *testing.T) {
	var table *Table
	if table.Len() != 0 {
		t.Error("nil table should have zero length")
	}
	if table.A() != nil || table.E() != nil {
		t.Error("nil table columns should be nil")
	}
}
