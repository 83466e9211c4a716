package main

import (
	"github.com/xuri/excelize/v2"

	"shaban/models"
)

// buildScansXLSX renders scan history rows into an XLSX workbook.
func buildScansXLSX(scans []models.Scan) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Scans"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Scanned At",
		"Engine",
		"Detected Text",
		"Region",
		"Classification",
		"Hiragana",
		"Number",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, s := range scans {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, s.CreatedAt.Format("2006-01-02 15:04:05"))
		write(2, s.Engine)
		write(3, s.DetectedText)
		write(4, s.Region)
		write(5, s.Classification)
		write(6, s.Hiragana)
		write(7, s.Number)
		write(8, s.Confidence)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
