package catalog

import "errors"

// Ошибки каталога.
var (
	// ErrBadStatus — сервер ответил не 2xx.
	ErrBadStatus = errors.New("unexpected http status")

	// ErrDownload — скачивание не удалось (сеть, таймаут, запись на диск).
	ErrDownload = errors.New("download failed")

	// ErrMalformedRecord — строка каталога не содержит валидных a и e.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrColumnMismatch — колонки таблицы разной длины.
	ErrColumnMismatch = errors.New("column length mismatch")
)
