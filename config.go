package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"shaban/pkg/plate"
)

// Config holds all runtime settings. Everything comes from the environment;
// a local .env file is loaded first without overriding variables already set.
type Config struct {
	Port          string
	Engine        string // tesseract | paddle | rekognition
	MinConfidence float64
	Separators    string
	RegionsFile   string
	PaddleURL     string
	AWSRegion     string
	DBDSN         string
	JWTSecret     string
	ScanImageDir  string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	minConf := plate.DefaultMinConfidence
	if v := os.Getenv("OCR_MIN_CONFIDENCE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			log.Printf("ignoring invalid OCR_MIN_CONFIDENCE %q", v)
		} else {
			minConf = f
		}
	}

	return Config{
		Port:          getEnv("PORT", "8080"),
		Engine:        getEnv("OCR_ENGINE", "tesseract"),
		MinConfidence: minConf,
		Separators:    getEnv("OCR_SEPARATORS", plate.DefaultSeparators),
		RegionsFile:   os.Getenv("REGIONS_FILE"),
		PaddleURL:     os.Getenv("PADDLE_OCR_URL"),
		AWSRegion:     os.Getenv("AWS_REGION"),
		DBDSN:         os.Getenv("DB_DSN"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-insecure-secret-change"),
		ScanImageDir:  os.Getenv("SCAN_IMAGE_DIR"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
