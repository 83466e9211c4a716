package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"shaban/pkg/plate"
)

const hiraganaChars = "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわをん"

// TesseractEngine runs a local Tesseract install (jpn traineddata required)
// through gosseract. A fresh client is created per recognition; gosseract
// clients are not safe to share across goroutines.
type TesseractEngine struct {
	lang      string
	whitelist string
	psm       gosseract.PageSegMode
}

// NewTesseract builds the engine with a character whitelist derived from
// what can legally appear on a plate: digits, hiragana, the region catalog
// and the serial separators.
func NewTesseract() *TesseractEngine {
	return &TesseractEngine{
		lang:      "jpn",
		whitelist: "0123456789" + hiraganaChars + strings.Join(plate.DefaultRegions, "") + plate.DefaultSeparators + " ",
		psm:       gosseract.PSM_SINGLE_WORD,
	}
}

func (e *TesseractEngine) Name() string { return "Tesseract" }

func (e *TesseractEngine) Confidence() int { return 75 }

func (e *TesseractEngine) Recognize(ctx context.Context, img image.Image) ([]plate.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prepped := PreprocessPlate(img)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, prepped, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode preprocessed image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage(e.lang)
	_ = client.SetWhitelist(e.whitelist)
	_ = client.SetPageSegMode(e.psm)
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}
	lines := make([]plate.Line, 0, len(boxes))
	for _, b := range boxes {
		txt := strings.TrimSpace(b.Word)
		if txt == "" {
			continue
		}
		lines = append(lines, plate.Line{Text: txt, Confidence: b.Confidence / 100})
	}
	return lines, nil
}

func (e *TesseractEngine) Close() error { return nil }
