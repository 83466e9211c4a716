package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"shaban/pkg/ocr"
	"shaban/pkg/plate"
)

// Runs the recognition pipeline against a local image file. Handy for
// checking engine setup and tuning the confidence threshold.
// Usage: go run ./cmd/scanimage [-engine name] [-min 0.5] photo.jpg
func main() {
	engineName := flag.String("engine", os.Getenv("OCR_ENGINE"), "ocr engine: tesseract, paddle, rekognition")
	minConf := flag.Float64("min", plate.DefaultMinConfidence, "line confidence threshold")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: scanimage [-engine name] [-min 0.5] <image>")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	eng, err := ocr.New(ctx, *engineName, ocr.Options{
		PaddleURL: os.Getenv("PADDLE_OCR_URL"),
		AWSRegion: os.Getenv("AWS_REGION"),
	})
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer eng.Close()

	img, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open image: %v", err)
	}
	lines, err := eng.Recognize(ctx, img)
	if err != nil {
		log.Fatalf("recognize: %v", err)
	}
	for _, ln := range lines {
		log.Printf("line %q confidence=%.2f", ln.Text, ln.Confidence)
	}

	text := plate.Normalize(lines, *minConf)
	rec := plate.NewDefaultParser().Parse(text)
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
