package inkstack

import (
	"image"
)

// Pixmap is a flat RGBA pixel buffer: interleaved R,G,B,A bytes in
// row-major order, origin top-left. len(Pix) == W*H*4.
// Transforms never mutate their input; every render allocates a new Pixmap.
type Pixmap struct {
	W, H int
	Pix  []uint8
}

func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*4),
	}
}

func pixOffset(w, x, y int) int {
	return (y*w + x) * 4
}

// FromImage copies an image into a new Pixmap. The fast path reuses the
// *image.RGBA layout directly; anything else goes through At().
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	pm := NewPixmap(w, h)

	if src, ok := img.(*image.RGBA); ok {
		for y := range h {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(pm.Pix[pixOffset(w, 0, y):pixOffset(w, 0, y)+w*4], row[:w*4])
		}
		return pm
	}

	for y := range h {
		for x := range w {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := pixOffset(w, x, y)
			pm.Pix[off] = uint8(r >> 8)
			pm.Pix[off+1] = uint8(g >> 8)
			pm.Pix[off+2] = uint8(b >> 8)
			pm.Pix[off+3] = uint8(a >> 8)
		}
	}
	return pm
}

func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.W, p.H)
	copy(out.Pix, p.Pix)
	return out
}

// RGBA returns the buffer as an *image.RGBA sharing no memory with p.
func (p *Pixmap) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.W, p.H))
	copy(img.Pix, p.Pix)
	return img
}
