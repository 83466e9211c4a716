package ocr

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestAdaptiveThresholdBinaryOutput(t *testing.T) {
	img := imaging.New(32, 32, color.NRGBA{128, 128, 128, 255})
	// dark square in the middle should survive thresholding as black
	for y := 12; y < 20; y++ {
		for x := 12; x < 20; x++ {
			img.Set(x, y, color.NRGBA{10, 10, 10, 255})
		}
	}
	out := adaptiveThreshold(img, 15, 5)
	sawBlack := false
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			v := uint8(r >> 8)
			if uint8(g>>8) != v || uint8(b>>8) != v {
				t.Fatalf("pixel (%d,%d) not gray", x, y)
			}
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) not binary: %d", x, y, v)
			}
			if v == 0 {
				sawBlack = true
			}
		}
	}
	if !sawBlack {
		t.Fatal("dark region was lost by thresholding")
	}
}

func TestPreprocessPlateUpscalesSmallImages(t *testing.T) {
	img := imaging.New(120, 60, color.NRGBA{255, 255, 255, 255})
	out := PreprocessPlate(img)
	if out.Bounds().Dy() < 600 {
		t.Fatalf("expected upscale to >=600px height, got %d", out.Bounds().Dy())
	}
}

func TestAdaptiveThresholdWindowClamp(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{200, 200, 200, 255})
	// degenerate window sizes must not panic
	_ = adaptiveThreshold(img, 0, 2)
	_ = adaptiveThreshold(img, 4, 2)
}
