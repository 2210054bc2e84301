package inkstack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.LayerCount != 3 {
		t.Errorf("LayerCount = %d, want 3", cfg.LayerCount)
	}
	if cfg.Paper != White {
		t.Errorf("Paper = %v, want white", cfg.Paper)
	}
	if cfg.BlendPolicy != BlendMultiply || cfg.CutStrategy != CutStack || cfg.Inverted {
		t.Errorf("defaults = (%v,%v,%v), want (multiply, reduction, false)",
			cfg.BlendPolicy, cfg.CutStrategy, cfg.Inverted)
	}
}

func TestEvenThresholds(t *testing.T) {
	if diff := cmp.Diff([]int{85, 170}, EvenThresholds(3)); diff != "" {
		t.Errorf("EvenThresholds(3) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{64, 128, 191}, EvenThresholds(4)); diff != "" {
		t.Errorf("EvenThresholds(4) (-want +got):\n%s", diff)
	}
	if EvenThresholds(1) != nil {
		t.Error("EvenThresholds(1) should be nil")
	}
}

func TestDefaultInksPreservedByIndex(t *testing.T) {
	two := DefaultInks(2)
	four := DefaultInks(4)
	if diff := cmp.Diff(four[:2], two); diff != "" {
		t.Errorf("truncated palette changed leading entries (-want +got):\n%s", diff)
	}
	six := DefaultInks(6)
	if diff := cmp.Diff(four, six[:4]); diff != "" {
		t.Errorf("extended palette changed leading entries (-want +got):\n%s", diff)
	}
	// Past the stock swatches the darkest repeats.
	if six[4] != four[3] || six[5] != four[3] {
		t.Errorf("extended entries = %v,%v, want darkest swatch %v", six[4], six[5], four[3])
	}
}

func TestSetLayerCountKeepsInksByIndex(t *testing.T) {
	cfg := DefaultConfig()
	custom := RGB{1, 2, 3}
	cfg.Inks[0] = custom

	cfg.SetLayerCount(5)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("resized config invalid: %v", err)
	}
	if len(cfg.Inks) != 4 || len(cfg.Thresholds) != 4 {
		t.Fatalf("resized to %d inks, %d thresholds, want 4 each", len(cfg.Inks), len(cfg.Thresholds))
	}
	if cfg.Inks[0] != custom {
		t.Errorf("ink 0 = %v, custom entry not preserved", cfg.Inks[0])
	}

	cfg.SelectedStep = 3
	cfg.SetLayerCount(2)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("shrunk config invalid: %v", err)
	}
	if len(cfg.Inks) != 1 || cfg.Inks[0] != custom {
		t.Errorf("shrunk inks = %v, want the preserved custom entry", cfg.Inks)
	}
	if cfg.SelectedStep != 0 {
		t.Errorf("SelectedStep = %d, want clamped to 0", cfg.SelectedStep)
	}
}

func TestCutStrategyLabels(t *testing.T) {
	if got := CutStack.String(); got != "reduction" {
		t.Errorf("CutStack = %q, want reduction", got)
	}
	if got := CutZone.String(); got != "isolated" {
		t.Errorf("CutZone = %q, want isolated", got)
	}
}

func TestValidateStepBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SelectedStep = 2 // steps are 0..1 for three layers
	if err := cfg.Validate(); err == nil {
		t.Error("composite view accepted out-of-range step")
	}

	cfg.ViewMode = ViewCutGuide
	cfg.CutStrategy = CutZone
	if err := cfg.Validate(); err == nil {
		t.Error("zone guide accepted out-of-range step")
	}

	// Stack guides tolerate overflow: they render an empty stencil.
	cfg.CutStrategy = CutStack
	if err := cfg.Validate(); err != nil {
		t.Errorf("stack guide rejected overflow step: %v", err)
	}
}
