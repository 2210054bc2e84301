package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/stevenijones/inkstack"
)

// Blur applies the configured pre-blur before a buffer reaches the
// engine: a separable Gaussian with sigma = radius over all four
// channels, edges clamped. radius <= 0 returns an untouched copy.
func Blur(pm *inkstack.Pixmap, radius float64) *inkstack.Pixmap {
	if radius <= 0 || pm.W == 0 || pm.H == 0 {
		return pm.Clone()
	}
	kernel := gaussianKernel(radius)
	r := len(kernel) / 2

	tmp := inkstack.NewPixmap(pm.W, pm.H)
	out := inkstack.NewPixmap(pm.W, pm.H)

	// Horizontal pass.
	for y := range pm.H {
		rowOff := y * pm.W * 4
		for x := range pm.W {
			var acc [4]float64
			for k, kw := range kernel {
				sx := min(max(x+k-r, 0), pm.W-1)
				off := rowOff + sx*4
				for ch := range 4 {
					acc[ch] += kw * float64(pm.Pix[off+ch])
				}
			}
			off := rowOff + x*4
			for ch := range 4 {
				tmp.Pix[off+ch] = clamp8(acc[ch])
			}
		}
	}

	// Vertical pass.
	for y := range pm.H {
		for x := range pm.W {
			var acc [4]float64
			for k, kw := range kernel {
				sy := min(max(y+k-r, 0), pm.H-1)
				off := (sy*pm.W + x) * 4
				for ch := range 4 {
					acc[ch] += kw * float64(tmp.Pix[off+ch])
				}
			}
			off := (y*pm.W + x) * 4
			for ch := range 4 {
				out.Pix[off+ch] = clamp8(acc[ch])
			}
		}
	}
	return out
}

func gaussianKernel(sigma float64) []float64 {
	r := max(int(math.Ceil(sigma*3)), 1)
	k := make([]float64, 2*r+1)
	for i := range k {
		d := float64(i - r)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

func clamp8(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v))))
}
