package ocr

import "errors"

// ErrUnknownEngine is returned when an engine name matches no backend.
var ErrUnknownEngine = errors.New("unknown ocr engine")

// ErrEngineUnavailable is returned when a backend exists but cannot be
// reached, e.g. the PaddleOCR sidecar is down or answering with errors.
var ErrEngineUnavailable = errors.New("ocr engine unavailable")
