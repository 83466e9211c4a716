package models

import "time"

// Scan is one recognition request and its parsed outcome. Rows are written
// best-effort after a successful /api/ocr call when a database is configured.
type Scan struct {
	ID             uint `gorm:"primaryKey"`
	CreatedAt      time.Time
	Engine         string `gorm:"size:32;not null"`
	DetectedText   string `gorm:"size:512"`
	Region         string `gorm:"size:32"`
	Classification string `gorm:"size:8"`
	Hiragana       string `gorm:"size:8"`
	Number         string `gorm:"size:16"`
	Confidence     int    `gorm:"not null"`
	// ImagePath is the stored copy of the input image, empty when image
	// retention is disabled.
	ImagePath string `gorm:"size:512"`
	UserID    *uint  `gorm:"index"` // nil for anonymous scans
}
