package repo

import "errors"

// Общие ошибки репозитория.
var (
	// ErrNotFound — batch не найден в БД.
	ErrNotFound = errors.New("not found")

	// ErrEmptyTable — попытка импортировать пустую таблицу.
	ErrEmptyTable = errors.New("empty table")
)
