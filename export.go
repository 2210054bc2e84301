package inkstack

import (
	"fmt"
	"iter"
)

// Layer pairs an export label with its rendered buffer.
type Layer struct {
	Label string
	Image *Pixmap
}

// Export yields the complete print plan in order: first the composite
// preview labeled "preview", then one cut guide per step labeled
// "<strategy>-<n>" with n 1-based ("reduction-1" or "isolated-1", after
// the cut strategy). View mode and step in cfg are overridden per output;
// inversion, strategy, color mode, and the ink setup carry through.
//
// The sequence renders lazily, one buffer per pull, so a consumer may
// break out between steps. Persistence is the consumer's job.
func Export(src *Pixmap, cfg Config) (iter.Seq2[string, *Pixmap], error) {
	base := cfg
	base.ViewMode = ViewComposite
	base.SelectedStep = 0
	if err := base.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(string, *Pixmap) bool) {
		preview, err := RenderComposite(src, base)
		if err != nil || !yield("preview", preview) {
			return
		}
		for step := range cfg.LayerCount - 1 {
			c := cfg
			c.ViewMode = ViewCutGuide
			c.SelectedStep = step
			guide, err := RenderCutGuide(src, c)
			if err != nil {
				return
			}
			if !yield(fmt.Sprintf("%s-%d", cfg.CutStrategy, step+1), guide) {
				return
			}
		}
	}, nil
}

// ExportAll collects the Export sequence into a slice.
func ExportAll(src *Pixmap, cfg Config) ([]Layer, error) {
	seq, err := Export(src, cfg)
	if err != nil {
		return nil, err
	}
	layers := make([]Layer, 0, cfg.LayerCount)
	for label, pm := range seq {
		layers = append(layers, Layer{Label: label, Image: pm})
	}
	return layers, nil
}
