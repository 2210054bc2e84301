package utils

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// MaxInputDim caps the longer dimension of images handed to the engine.
const MaxInputDim = 1200

// FitToMaxDim proportionally downscales img so its longer dimension is at
// most maxDim; the shorter dimension becomes round(shorter*maxDim/longer).
// Images already within the cap are returned unchanged.
func FitToMaxDim(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDim <= 0 || max(w, h) <= maxDim {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = int(math.Round(float64(h) * float64(maxDim) / float64(w)))
	} else {
		nh = maxDim
		nw = int(math.Round(float64(w) * float64(maxDim) / float64(h)))
	}
	nw = max(nw, 1)
	nh = max(nh, 1)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
