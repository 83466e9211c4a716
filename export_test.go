package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"shaban/models"
)

func TestBuildScansXLSX(t *testing.T) {
	scans := []models.Scan{{
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Engine:         "Tesseract",
		DetectedText:   "品川 500 あ 12-34",
		Region:         "品川",
		Classification: "500",
		Hiragana:       "あ",
		Number:         "12-34",
		Confidence:     75,
	}}
	data, err := buildScansXLSX(scans)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Scans" {
		t.Fatalf("unexpected sheet list: %v", sheets)
	}
	if v, _ := f.GetCellValue("Scans", "A1"); v != "Scanned At" {
		t.Fatalf("unexpected header: %q", v)
	}
	if v, _ := f.GetCellValue("Scans", "D2"); v != "品川" {
		t.Fatalf("unexpected region cell: %q", v)
	}
	if v, _ := f.GetCellValue("Scans", "G2"); v != "12-34" {
		t.Fatalf("unexpected number cell: %q", v)
	}
}

func TestBuildScansXLSXEmpty(t *testing.T) {
	data, err := buildScansXLSX(nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook bytes")
	}
}
