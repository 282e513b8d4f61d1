package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Output печатает результаты команд.
//
// Данные (таблицы, JSON, изображение при --out -) идут в data,
// сообщения о ходе работы и ошибки идут в msg. Так вывод
// `plot --out - > file.png` не смешивается с текстом.
type Output struct {
	json bool
	data io.Writer
	msg  io.Writer
}

// NewOutput создаёт Output поверх os.Stdout и os.Stderr.
func NewOutput(jsonMode bool) *Output {
	return NewOutputTo(os.Stdout, os.Stderr, jsonMode)
}

// NewOutputTo создаёт Output поверх заданных writer'ов.
func NewOutputTo(data, msg io.Writer, jsonMode bool) *Output {
	return &Output{json: jsonMode, data: data, msg: msg}
}

// Writer возвращает поток данных.
func (o *Output) Writer() io.Writer {
	return o.data
}

// Print печатает строки таблицей, а в режиме --json печатает v.
func (o *Output) Print(headers []string, rows [][]string, v any) {
	if o.json {
		o.JSON(v)
		return
	}
	o.Table(headers, rows)
}

// Table печатает выровненную таблицу с линией под заголовком.
func (o *Output) Table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.data, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}

	for _, line := range append([][]string{headers, rule}, rows...) {
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}
}

// JSON печатает v с отступом в два пробела.
func (o *Output) JSON(v any) {
	enc := json.NewEncoder(o.data)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		o.Error(fmt.Sprintf("encode json: %v", err))
	}
}

// Success печатает сообщение о результате.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.msg, msg)
}

// Error печатает ошибку с префиксом "Error:".
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.msg, "Error:", msg)
}
