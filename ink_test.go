package inkstack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInkTableOpaqueSingleInk(t *testing.T) {
	table := InkTable(White, []RGB{{0, 0, 0}}, BlendOpaque)
	want := []RGB{
		{0, 0, 0},       // band 0: the one ink applied
		{255, 255, 255}, // band 1: bare paper
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("opaque table mismatch (-want +got):\n%s", diff)
	}
}

func TestInkTableOpaqueShowsDarkestApplied(t *testing.T) {
	inks := []RGB{{200, 200, 0}, {100, 0, 0}, {10, 10, 10}}
	table := InkTable(White, inks, BlendOpaque)
	want := []RGB{
		{10, 10, 10},    // three inks down, darkest on top
		{100, 0, 0},     // two inks down
		{200, 200, 0},   // one ink down
		{255, 255, 255}, // paper
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Errorf("opaque table mismatch (-want +got):\n%s", diff)
	}
}

func TestInkTableMultiplySingleApplication(t *testing.T) {
	table := InkTable(White, []RGB{{128, 64, 0}}, BlendMultiply)
	// One pass over white paper yields exactly the ink color.
	if got, want := table[0], (RGB{128, 64, 0}); got != want {
		t.Errorf("band 0 = %v, want %v", got, want)
	}
	if got := table[1]; got != White {
		t.Errorf("paper band = %v, want white", got)
	}
}

func TestInkTableMultiplyCompounds(t *testing.T) {
	ink := RGB{128, 64, 0}
	table := InkTable(White, []RGB{ink, ink}, BlendMultiply)
	// floor(128*128/255)=64, floor(64*64/255)=16.
	if got, want := table[0], (RGB{64, 16, 0}); got != want {
		t.Errorf("double-inked band = %v, want %v", got, want)
	}
	if got, want := table[1], ink; got != want {
		t.Errorf("single-inked band = %v, want %v", got, want)
	}
}

func TestInkTableMultiplyStartsFromPaper(t *testing.T) {
	paper := RGB{200, 220, 180}
	table := InkTable(paper, []RGB{{255, 255, 255}}, BlendMultiply)
	// A fully transparent (white) ink leaves the paper color intact.
	if got := table[0]; got != paper {
		t.Errorf("band 0 = %v, want paper %v", got, paper)
	}
}
