// Package repo сохраняет разобранные таблицы каталога в PostgreSQL.
//
// Каждый импорт получает batch_id (UUID); строки пишутся через COPY.
// Схема создаётся командой import при первом запуске (EnsureSchema).
package repo
