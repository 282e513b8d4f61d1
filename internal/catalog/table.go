package catalog

import (
	"fmt"
	"math"
)

// Имена колонок таблицы.
const (
	ColumnE = "e"
	ColumnA = "a"
)

// Row — одна строка таблицы.
type Row struct {
	A float64 `json:"a"`
	E float64 `json:"e"`
}

// Table — колоночная таблица с двумя колонками: большая полуось (a, а.е.)
// и эксцентриситет (e). Обе колонки всегда одной длины.
type Table struct {
	a []float64
	e []float64
}

// NewTable создаёт таблицу из готовых колонок.
func NewTable(a, e []float64) (*Table, error) {
	if len(a) != len(e) {
		return nil, fmt.Errorf("%w: a=%d e=%d", ErrColumnMismatch, len(a), len(e))
	}
	return &Table{a: a, e: e}, nil
}

// Len возвращает количество строк.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.a)
}

// Columns возвращает имена колонок в порядке каталога.
func (t *Table) Columns() []string {
	return []string{ColumnE, ColumnA}
}

// A возвращает колонку большой полуоси. Срез нельзя изменять.
func (t *Table) A() []float64 {
	if t == nil {
		return nil
	}
	return t.a
}

// E возвращает колонку эксцентриситета. Срез нельзя изменять.
func (t *Table) E() []float64 {
	if t == nil {
		return nil
	}
	return t.e
}

// Row возвращает i-ю строку.
func (t *Table) Row(i int) Row {
	return Row{A: t.a[i], E: t.e[i]}
}

func (t *Table) append(a, e float64) {
	t.a = append(t.a, a)
	t.e = append(t.e, e)
}

// Filter возвращает новую таблицу из строк с aMin <= a <= aMax.
func (t *Table) Filter(aMin, aMax float64) *Table {
	out := &Table{}
	for i := 0; i < t.Len(); i++ {
		if t.a[i] >= aMin && t.a[i] <= aMax {
			out.append(t.a[i], t.e[i])
		}
	}
	return out
}

// Stats — сводка по таблице.
type Stats struct {
	Count int     `json:"count"`
	MinA  float64 `json:"min_a"`
	MaxA  float64 `json:"max_a"`
	MinE  float64 `json:"min_e"`
	MaxE  float64 `json:"max_e"`
}

// Stats считает сводку. Для пустой таблицы все границы нулевые.
func (t *Table) Stats() Stats {
	n := t.Len()
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		Count: n,
		MinA:  math.Inf(1),
		MaxA:  math.Inf(-1),
		MinE:  math.Inf(1),
		MaxE:  math.Inf(-1),
	}
	for i := 0; i < n; i++ {
		s.MinA = math.Min(s.MinA, t.a[i])
		s.MaxA = math.Max(s.MaxA, t.a[i])
		s.MinE = math.Min(s.MinE, t.e[i])
		s.MaxE = math.Max(s.MaxE, t.e[i])
	}
	return s
}
