package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shaban/pkg/ocr"
	"shaban/pkg/plate"
)

var (
	cfg       Config
	jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)
	ocrEngine ocr.Engine
	parser    = newParserHolder(plate.NewDefaultParser())
)

func main() {
	cfg = LoadConfig()
	jwtSecret = []byte(cfg.JWTSecret)

	// Support a lightweight migrate command: `./shaban migrate`
	// Runs AutoMigrate then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if cfg.DBDSN == "" {
			log.Fatal("migrate requires DB_DSN")
		}
		initDB(cfg.DBDSN)
		fmt.Println("migration completed")
		return
	}

	initParser()

	eng, err := ocr.New(context.Background(), cfg.Engine, ocr.Options{
		PaddleURL: cfg.PaddleURL,
		AWSRegion: cfg.AWSRegion,
	})
	if err != nil {
		log.Fatalf("ocr engine: %v", err)
	}
	ocrEngine = eng
	defer func() { _ = ocrEngine.Close() }()
	log.Printf("ocr engine ready: %s", ocrEngine.Name())

	if cfg.DBDSN != "" {
		initDB(cfg.DBDSN)
	} else {
		log.Println("DB_DSN not set; scan history and accounts are disabled")
	}

	if cfg.RegionsFile != "" {
		stop, err := watchRegions(cfg.RegionsFile)
		if err != nil {
			log.Printf("region catalog watcher disabled: %v", err)
		} else {
			defer stop()
		}
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))
	setupRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// initParser builds the parser from the configured region catalog and
// separator set. A broken regions file falls back to the built-in catalog.
func initParser() {
	regions := plate.DefaultRegions
	if cfg.RegionsFile != "" {
		loaded, err := plate.LoadRegionsFile(cfg.RegionsFile)
		if err != nil {
			log.Printf("regions file unusable, using built-in catalog: %v", err)
		} else {
			regions = loaded
			log.Printf("region catalog loaded from %s: %d entries", cfg.RegionsFile, len(regions))
		}
	}
	parser.set(plate.NewParser(regions, cfg.Separators))
}
