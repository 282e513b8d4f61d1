package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Границы колонок в формате MPCORB (0-based, полуинтервал [start, end)).
// В документации MPC: e — колонки 71-79, a — колонки 93-103.
const (
	eStart = 70
	eEnd   = 79
	aStart = 92
	aEnd   = 103
)

// Значения по умолчанию для разбора MPCORB.DAT.
const (
	// DefaultSkipRows — длина заголовка MPCORB.DAT.
	DefaultSkipRows = 43

	// DefaultMaxRows — сколько астероидов читать по умолчанию.
	DefaultMaxRows = 100000
)

// ParseOptions — параметры разбора.
type ParseOptions struct {
	// SkipRows — количество строк заголовка, которые пропускаются целиком.
	SkipRows int

	// MaxRows — максимум строк данных. 0 — без ограничения.
	MaxRows int
}

// DefaultParseOptions возвращает параметры для стандартного MPCORB.DAT.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SkipRows: DefaultSkipRows,
		MaxRows:  DefaultMaxRows,
	}
}

// ReadFile открывает файл каталога и разбирает его.
func ReadFile(path string, opts ParseOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse читает строки фиксированной ширины и строит таблицу (a, e).
//
// Первые SkipRows строк пропускаются. Пустые строки данных пропускаются
// и не считаются в MaxRows. Результат содержит ровно MaxRows строк,
// либо меньше, если данные кончились раньше.
func Parse(r io.Reader, opts ParseOptions) (*Table, error) {
	scanner := bufio.NewScanner(r)
	table := &Table{}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= opts.SkipRows {
			continue
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		a, e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		table.append(a, e)

		if opts.MaxRows > 0 && table.Len() >= opts.MaxRows {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return table, nil
}

// parseLine извлекает a и e из одной строки каталога.
func parseLine(line string) (a, e float64, err error) {
	// Хвостовые пробелы поля a могут быть обрезаны, поэтому строка
	// короче aEnd допустима, если в ней есть хоть что-то после aStart.
	if len(line) <= aStart {
		return 0, 0, fmt.Errorf("%w: line too short (%d chars)", ErrMalformedRecord, len(line))
	}

	e, err = parseField(line, eStart, eEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: e: %v", ErrMalformedRecord, err)
	}

	a, err = parseField(line, aStart, aEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: a: %v", ErrMalformedRecord, err)
	}

	return a, e, nil
}

// parseField разбирает число из колонок [start, end).
func parseField(line string, start, end int) (float64, error) {
	end = min(end, len(line))
	field := strings.TrimSpace(line[start:end])
	if field == "" {
		return 0, fmt.Errorf("empty field at columns %d-%d", start+1, end)
	}
	return strconv.ParseFloat(field, 64)
}
