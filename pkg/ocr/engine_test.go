package ocr

import (
	"context"
	"errors"
	"testing"
)

func TestNewDefaultsToTesseract(t *testing.T) {
	eng, err := New(context.Background(), "", Options{})
	if err != nil {
		t.Fatalf("default engine: %v", err)
	}
	defer eng.Close()
	if eng.Name() != "Tesseract" {
		t.Fatalf("expected Tesseract got %s", eng.Name())
	}
}

func TestNewUnknownEngine(t *testing.T) {
	_, err := New(context.Background(), "easyocr", Options{})
	if !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine got %v", err)
	}
}

func TestNewPaddleRequiresURL(t *testing.T) {
	if _, err := New(context.Background(), "paddle", Options{}); err == nil {
		t.Fatal("expected error without PADDLE_OCR_URL")
	}
	eng, err := New(context.Background(), "paddle", Options{PaddleURL: "http://127.0.0.1:8868/ocr"})
	if err != nil {
		t.Fatalf("paddle engine: %v", err)
	}
	defer eng.Close()
	if eng.Confidence() != 95 {
		t.Fatalf("unexpected paddle confidence %d", eng.Confidence())
	}
}
