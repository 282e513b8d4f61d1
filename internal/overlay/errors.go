package overlay

import "errors"

// ErrInvalidOverlay — YAML не разбирается или не проходит валидацию.
var ErrInvalidOverlay = errors.New("invalid overlay")
