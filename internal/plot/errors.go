package plot

import "errors"

var (
	// ErrUnknownFormat — формат вывода не поддерживается.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrRender — go-chart не смог отрисовать график.
	ErrRender = errors.New("render failed")
)
