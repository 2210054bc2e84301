package inkstack

import (
	"fmt"
	"math"
	"slices"
)

// ViewMode selects which kind of output a render produces.
type ViewMode int

const (
	ViewComposite ViewMode = iota
	ViewCutGuide
)

// CutStrategy selects how cut guides are derived from the tonal bands.
type CutStrategy int

const (
	// CutStack models a reduction print: one block, each step carves away
	// more of the previously inked area, so stencils are cumulative.
	CutStack CutStrategy = iota
	// CutZone models separate blocks: each step keeps exactly one tonal
	// band, so stencils are mutually exclusive.
	CutZone
)

func (s CutStrategy) String() string {
	switch s {
	case CutZone:
		return "isolated"
	default:
		return "reduction"
	}
}

// BlendPolicy selects the ink-mixing model for colored composites.
type BlendPolicy int

const (
	// BlendMultiply compounds translucent inks over paper,
	// per channel: result = floor(a*c/255).
	BlendMultiply BlendPolicy = iota
	// BlendOpaque shows only the most recently applied ink.
	BlendOpaque
)

// RGB is an 8-bit color triple. The ink model works entirely in 8-bit
// channel space so multiply blending stays exact.
type RGB struct {
	R, G, B uint8
}

var White = RGB{255, 255, 255}

// defaultInkSwatches is the stock palette, lightest ink first.
var defaultInkSwatches = []RGB{
	{233, 196, 106},
	{231, 111, 81},
	{144, 57, 39},
	{59, 41, 33},
}

// Config drives every render. LayerCount tonal bands produce
// LayerCount-1 ink/cut steps; Thresholds and Inks must both have
// LayerCount-1 entries. Thresholds need not be pre-sorted; the engine
// sorts a private copy. Inks are ordered lightest first.
type Config struct {
	LayerCount int
	Thresholds []int
	// BlurAmount is the pre-blur radius a collaborator applies before the
	// buffer reaches this package. The engine itself never blurs.
	BlurAmount   float64
	ViewMode     ViewMode
	SelectedStep int
	Inverted     bool
	CutStrategy  CutStrategy
	ColorMode    bool
	BlendPolicy  BlendPolicy
	Paper        RGB
	Inks         []RGB
}

func DefaultConfig() Config {
	const n = 3
	return Config{
		LayerCount: n,
		Thresholds: EvenThresholds(n),
		Paper:      White,
		Inks:       DefaultInks(n - 1),
	}
}

// EvenThresholds returns layerCount-1 evenly spaced thresholds,
// round(255/layerCount*i) for i = 1..layerCount-1.
func EvenThresholds(layerCount int) []int {
	if layerCount < 2 {
		return nil
	}
	out := make([]int, layerCount-1)
	for i := range out {
		out[i] = int(math.Round(255 / float64(layerCount) * float64(i+1)))
	}
	return out
}

// DefaultInks returns n inks from the stock palette, lightest first.
// Entries are preserved by index as n changes; past the stock palette the
// darkest swatch repeats.
func DefaultInks(n int) []RGB {
	if n <= 0 {
		return nil
	}
	out := make([]RGB, n)
	for i := range out {
		out[i] = defaultInkSwatches[min(i, len(defaultInkSwatches)-1)]
	}
	return out
}

// Validate reports the first malformed field. Callers must pass a valid
// Config to every render; the engine fails fast instead of clamping.
func (c *Config) Validate() error {
	if c.LayerCount < 2 {
		return fmt.Errorf("inkstack: layer count %d, need at least 2", c.LayerCount)
	}
	steps := c.LayerCount - 1
	if len(c.Thresholds) != steps {
		return fmt.Errorf("inkstack: %d thresholds for %d layers, need %d", len(c.Thresholds), c.LayerCount, steps)
	}
	for _, t := range c.Thresholds {
		if t < 0 || t > 255 {
			return fmt.Errorf("inkstack: threshold %d outside [0,255]", t)
		}
	}
	if len(c.Inks) != steps {
		return fmt.Errorf("inkstack: %d inks for %d layers, need %d", len(c.Inks), c.LayerCount, steps)
	}
	if c.BlurAmount < 0 {
		return fmt.Errorf("inkstack: negative blur amount %g", c.BlurAmount)
	}
	if c.SelectedStep < 0 {
		return fmt.Errorf("inkstack: negative step %d", c.SelectedStep)
	}
	if c.SelectedStep > steps-1 && !(c.ViewMode == ViewCutGuide && c.CutStrategy == CutStack) {
		// Stack guides past the last threshold render an empty (all-white)
		// stencil instead of failing; everything else rejects the step.
		return fmt.Errorf("inkstack: step %d outside [0,%d]", c.SelectedStep, steps-1)
	}
	return nil
}

// SetLayerCount resizes the per-step fields to match a new band count.
// Existing inks keep their index; new steps take stock swatches or repeat
// the caller's darkest ink. Thresholds reset to even spacing, since old
// band boundaries have no meaning under a different band count.
func (c *Config) SetLayerCount(n int) {
	if n < 2 {
		return
	}
	steps := n - 1
	inks := make([]RGB, steps)
	for i := range inks {
		switch {
		case i < len(c.Inks):
			inks[i] = c.Inks[i]
		case len(c.Inks) > 0 && i >= len(defaultInkSwatches):
			inks[i] = c.Inks[len(c.Inks)-1]
		default:
			inks[i] = defaultInkSwatches[min(i, len(defaultInkSwatches)-1)]
		}
	}
	c.LayerCount = n
	c.Inks = inks
	c.Thresholds = EvenThresholds(n)
	if c.SelectedStep > steps-1 {
		c.SelectedStep = steps - 1
	}
}

// sortedThresholds returns an ascending private copy of c.Thresholds.
func (c *Config) sortedThresholds() []int {
	out := slices.Clone(c.Thresholds)
	slices.Sort(out)
	return out
}

// CropRect is an axis-aligned selection in master-image pixel
// coordinates. W and H may be negative mid-drag; Normalized shifts the
// origin and makes both extents non-negative.
type CropRect struct {
	X, Y, W, H int
}

func (r CropRect) Normalized() CropRect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Empty reports whether the normalized rect selects no pixels.
func (r CropRect) Empty() bool {
	n := r.Normalized()
	return n.W == 0 || n.H == 0
}
