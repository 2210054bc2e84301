package inkstack

import "math"

// Render produces the output selected by cfg.ViewMode: the posterized
// composite preview or the cut guide for cfg.SelectedStep.
func Render(src *Pixmap, cfg Config) (*Pixmap, error) {
	if cfg.ViewMode == ViewCutGuide {
		return RenderCutGuide(src, cfg)
	}
	return RenderComposite(src, cfg)
}

// RenderComposite returns the posterized preview: same dimensions, alpha
// untouched, RGB replaced by the pixel's band color. In color mode the
// band color comes from the ink table; otherwise it is the band rank
// spread over [0,255] (flat gray bands, not averaged luminance).
func RenderComposite(src *Pixmap, cfg Config) (*Pixmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sorted := cfg.sortedThresholds()

	var table []RGB
	if cfg.ColorMode {
		table = InkTable(cfg.Paper, cfg.Inks, cfg.BlendPolicy)
	}

	// Grayscale values per band, hoisted like the ink table.
	grays := make([]uint8, cfg.LayerCount)
	for b := range grays {
		grays[b] = uint8(math.Round(float64(b) / float64(cfg.LayerCount-1) * 255))
	}

	out := NewPixmap(src.W, src.H)
	for i := 0; i < len(src.Pix); i += 4 {
		b := bucketOf(luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2]), sorted)
		if cfg.ColorMode {
			c := table[b]
			out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.R, c.G, c.B
		} else {
			v := grays[b]
			out.Pix[i], out.Pix[i+1], out.Pix[i+2] = v, v, v
		}
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out, nil
}

// RenderCutGuide returns the bitonal stencil for cfg.SelectedStep: kept
// pixels are pure black (ink stays, do not carve), the rest pure white.
// Alpha passes through. cfg.Inverted complements the keep decision.
//
// CutStack keeps every pixel darker than the step's threshold, counted
// from the darkest threshold backwards, so later steps keep less. A stack
// step past the last threshold keeps nothing and renders all white.
// CutZone keeps exactly the one band the step addresses.
func RenderCutGuide(src *Pixmap, cfg Config) (*Pixmap, error) {
	cfg.ViewMode = ViewCutGuide
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sorted := cfg.sortedThresholds()
	steps := cfg.LayerCount - 1

	stackIdx := steps - 1 - cfg.SelectedStep
	zoneBand := cfg.LayerCount - 1 - (cfg.SelectedStep + 1)

	out := NewPixmap(src.W, src.H)
	for i := 0; i < len(src.Pix); i += 4 {
		lum := luma(src.Pix[i], src.Pix[i+1], src.Pix[i+2])
		var keep bool
		if cfg.CutStrategy == CutZone {
			keep = bucketOf(lum, sorted) == zoneBand
		} else {
			keep = stackIdx >= 0 && lum < float64(sorted[stackIdx])
		}
		if cfg.Inverted {
			keep = !keep
		}
		v := uint8(255)
		if keep {
			v = 0
		}
		out.Pix[i], out.Pix[i+1], out.Pix[i+2] = v, v, v
		out.Pix[i+3] = src.Pix[i+3]
	}
	return out, nil
}
