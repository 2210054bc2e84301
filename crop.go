package inkstack

import "fmt"

// Crop returns a 1:1 copy of the normalized rect from src, no scaling.
// Degenerate and out-of-bounds rects are rejected.
func Crop(src *Pixmap, rect CropRect) (*Pixmap, error) {
	r := rect.Normalized()
	if r.W == 0 || r.H == 0 {
		return nil, fmt.Errorf("inkstack: empty crop rect %dx%d", r.W, r.H)
	}
	if r.X < 0 || r.Y < 0 || r.X+r.W > src.W || r.Y+r.H > src.H {
		return nil, fmt.Errorf("inkstack: crop rect (%d,%d %dx%d) outside %dx%d image",
			r.X, r.Y, r.W, r.H, src.W, src.H)
	}

	out := NewPixmap(r.W, r.H)
	for y := range r.H {
		srcOff := pixOffset(src.W, r.X, r.Y+y)
		dstOff := pixOffset(r.W, 0, y)
		copy(out.Pix[dstOff:dstOff+r.W*4], src.Pix[srcOff:srcOff+r.W*4])
	}
	return out, nil
}
