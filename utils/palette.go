package utils

import (
	"image"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/stevenijones/inkstack"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// SuggestInks extracts n ink candidates from a source photo, ordered
// lightest first as the engine expects. May return fewer than n colors
// for near-flat images.
func SuggestInks(img image.Image, n int, method PaletteMethod) []inkstack.RGB {
	if n <= 0 {
		return nil
	}
	var palette []colorful.Color
	switch method {
	case PaletteMethodKMeans:
		palette = kmeansPalette(img, n)
		if len(palette) == 0 {
			log.Println("ink suggestion: kmeans returned empty palette, falling back to dominantcolor")
			palette = dominantPalette(img, n)
		}
	default:
		palette = dominantPalette(img, n)
	}
	sortLightestFirst(palette)

	out := make([]inkstack.RGB, len(palette))
	for i, c := range palette {
		out[i] = toRGB(c)
	}
	return out
}

// sortLightestFirst orders colors by descending linear-RGB luminance so
// index 0 is the lightest ink, the one laid down first.
func sortLightestFirst(palette []colorful.Color) {
	slices.SortFunc(palette, func(a, b colorful.Color) int {
		ra, ga, ba := a.LinearRgb()
		rb, gb, bb := b.LinearRgb()
		ya := 0.2126*ra + 0.7152*ga + 0.0722*ba
		yb := 0.2126*rb + 0.7152*gb + 0.0722*bb
		if ya > yb {
			return -1
		}
		if ya < yb {
			return 1
		}
		return 0
	})
}

func toRGB(c colorful.Color) inkstack.RGB {
	c = c.Clamped()
	return inkstack.RGB{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
	}
}

func dominantPalette(img image.Image, k int) []colorful.Color {
	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		// Last resort so downstream selection never sees an empty set.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		weighted = append(weighted, weightedColor{col: col.Clamped(), weight: max(c.Weight, 1e-6)})
	}
	return selectDiverse(weighted, k)
}

func kmeansPalette(img image.Image, k int) []colorful.Color {
	dataset := sampleColors(img, 12000)
	if len(dataset) == 0 {
		return nil
	}
	workK := min(max(k*4, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{col: col, weight: max(float64(len(c.Observations)), 1e-6)})
	}
	return selectDiverse(weighted, k)
}

// sampleColors subsamples opaque pixels to keep clustering tractable.
func sampleColors(img image.Image, maxSamples int) clusters.Observations {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}
	dataset := make(clusters.Observations, 0, min(w*h, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	return dataset
}

// selectDiverse greedily picks k colors, scoring candidates by Lab
// distance to the picks so far scaled by their weight. Seeded with the
// heaviest candidate to stay close to the dominant tones.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))

	labs := make([][3]float64, len(cands))
	maxW := 0.0
	for i, c := range cands {
		l, a, b := c.col.Lab()
		labs[i] = [3]float64{l, a, b}
		maxW = max(maxW, c.weight)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	picked := make([]int, 0, k)
	taken := make([]bool, len(cands))

	seed := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].weight > cands[seed].weight {
			seed = i
		}
	}
	picked = append(picked, seed)
	taken[seed] = true

	for len(picked) < k {
		bestIdx, bestScore := -1, -1.0
		for i := range cands {
			if taken[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, p := range picked {
				d0 := labs[i][0] - labs[p][0]
				d1 := labs[i][1] - labs[p][1]
				d2 := labs[i][2] - labs[p][2]
				minD2 = min(minD2, d0*d0+d1*d1+d2*d2)
			}
			normW := cands[i].weight / maxW
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(normW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		taken[bestIdx] = true
		picked = append(picked, bestIdx)
	}

	out := make([]colorful.Color, len(picked))
	for i, idx := range picked {
		out[i] = cands[idx].col
	}
	return out
}
