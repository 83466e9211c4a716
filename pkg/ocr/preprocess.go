package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PreprocessPlate prepares a plate photo for character recognition:
// grayscale, light blur to knock out sensor noise, contrast boost, sharpen,
// upscale small crops, then adaptive thresholding so the characters come out
// as clean black-on-white shapes regardless of plate color.
func PreprocessPlate(img image.Image) *image.NRGBA {
	gray := imaging.Grayscale(img)
	gray = imaging.Blur(gray, 0.5)
	gray = imaging.AdjustContrast(gray, 20)
	gray = imaging.Sharpen(gray, 0.8)
	if gray.Bounds().Dy() < 600 {
		gray = imaging.Resize(gray, 0, 600, imaging.Lanczos)
	}
	return adaptiveThreshold(gray, 15, 10)
}

// adaptiveThreshold binarizes against the local mean of a window centered on
// each pixel, minus a bias. Uses a summed-area table so the window mean is
// O(1) per pixel.
func adaptiveThreshold(img image.Image, window int, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	half := window / 2

	sums := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rowSum += int((r + g + b) / 3 >> 8)
			idx := y*w + x
			if y == 0 {
				sums[idx] = rowSum
			} else {
				sums[idx] = sums[(y-1)*w+x] + rowSum
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half, y+half
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}
			if y1 >= h {
				y1 = h - 1
			}
			a := sums[y0*w+x0]
			b := sums[y0*w+x1]
			c := sums[y1*w+x0]
			d := sums[y1*w+x1]
			mean := (d - b - c + a) / ((x1 - x0 + 1) * (y1 - y0 + 1))
			rv, gv, bv, _ := img.At(x, y).RGBA()
			pix := int((rv + gv + bv) / 3 >> 8)
			th := mean - bias
			if th < 0 {
				th = 0
			}
			if pix < th {
				out.Set(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return out
}
