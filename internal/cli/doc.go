// Package cli реализует команды asteroidgraph.
//
// # Команды
//
//   - download — скачать MPCORB.DAT
//   - plot     — нарисовать диаграмму a–e в PNG/SVG
//   - stats    — сводка по разобранной таблице
//   - serve    — интерактивный viewer со слайдерами (+ плановое обновление каталога)
//   - import   — сохранить таблицу в PostgreSQL
//   - batches  — список сохранённых импортов
//
// Каждая команда создаётся фабричной функцией (NewPlotCmd и т.д.), принимающей
// Deps — замыкание для ленивого создания Output после парсинга PersistentFlags.
// Логгер команда берёт из контекста (telemetry.FromContext): корневая команда
// кладёт его туда в PersistentPreRun с полем command.
//
// Данные выводятся в stdout, сообщения (Success/Error) и логи — в stderr.
package cli
