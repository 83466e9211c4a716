package main

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shaban/models"
)

// db is nil when no DB_DSN is configured; the recognizer works without it,
// only scan history and accounts are disabled.
var db *gorm.DB

func initDB(dsn string) {
	var err error
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Scan{}); err != nil {
			log.Printf("migration warning (scans): %v", err)
		}
	}
	ensureScanImageDir()
}

// ensureScanImageDir creates the retained-image directory when configured.
func ensureScanImageDir() {
	if cfg.ScanImageDir == "" {
		return
	}
	if err := os.MkdirAll(cfg.ScanImageDir, 0755); err != nil {
		log.Printf("failed to create scan image dir %s: %v", cfg.ScanImageDir, err)
	}
}
