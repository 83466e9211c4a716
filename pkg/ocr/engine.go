package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"shaban/pkg/plate"
)

// Engine is the boundary to a text recognition backend. Implementations
// receive an already-decoded image and return raw lines with per-line
// confidence in [0,1]; they never parse plate semantics themselves.
type Engine interface {
	Name() string
	// Confidence is the coarse engine-level confidence reported to API
	// callers (0-100). It reflects which backend produced the text, not the
	// quality of an individual recognition.
	Confidence() int
	Recognize(ctx context.Context, img image.Image) ([]plate.Line, error)
	Close() error
}

// Options carries backend-specific settings, typically read from the
// environment at startup.
type Options struct {
	// PaddleURL is the endpoint of a PaddleOCR sidecar (paddle engine).
	PaddleURL string
	// AWSRegion selects the Rekognition region (rekognition engine).
	AWSRegion string
}

// New constructs the named engine. The empty name selects tesseract.
func New(ctx context.Context, name string, opts Options) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tesseract":
		return NewTesseract(), nil
	case "paddle":
		if opts.PaddleURL == "" {
			return nil, fmt.Errorf("paddle engine requires PADDLE_OCR_URL")
		}
		return NewPaddle(opts.PaddleURL), nil
	case "rekognition":
		return NewRekognition(ctx, opts.AWSRegion)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, name)
	}
}
