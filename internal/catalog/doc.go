// Package catalog загружает и разбирает каталог орбитальных элементов
// MPCORB.DAT (Minor Planet Center).
//
// Включает:
//   - download.go — скачивание каталога по HTTP во временный файл с атомарным rename
//   - parser.go   — разбор строк фиксированной ширины (колонки e и a)
//   - table.go    — Table: колоночная таблица (a, e) и её сводка
//
// Каталог читается один раз и дальше используется только для построения графика.
package catalog
