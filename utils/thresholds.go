package utils

import (
	"image"
	"log"
	"math"
	"slices"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"

	"github.com/stevenijones/inkstack"
)

type ThresholdMethod int

const (
	// ThresholdEven spaces thresholds evenly over [0,255].
	ThresholdEven ThresholdMethod = iota
	// ThresholdPercentile places thresholds at luminance quantiles so
	// every tonal band covers an equal share of pixels.
	ThresholdPercentile
	// ThresholdKMeans clusters the luminance distribution and puts
	// thresholds midway between neighboring cluster centers.
	ThresholdKMeans
)

func (m ThresholdMethod) String() string {
	switch m {
	case ThresholdPercentile:
		return "percentile"
	case ThresholdKMeans:
		return "kmeans"
	default:
		return "even"
	}
}

// SuggestThresholds derives layerCount-1 ascending thresholds in [0,255]
// from the image's luminance distribution. Degenerate inputs fall back to
// even spacing.
func SuggestThresholds(img image.Image, layerCount int, method ThresholdMethod) []int {
	if layerCount < 2 {
		return nil
	}
	switch method {
	case ThresholdPercentile:
		if t := percentileThresholds(img, layerCount); t != nil {
			return t
		}
		log.Println("threshold suggestion: percentile failed, falling back to even spacing")
	case ThresholdKMeans:
		if t := kmeansThresholds(img, layerCount); t != nil {
			return t
		}
		log.Println("threshold suggestion: kmeans failed, falling back to even spacing")
	}
	return inkstack.EvenThresholds(layerCount)
}

func percentileThresholds(img image.Image, layerCount int) []int {
	samples := lumaSamples(img, 12000)
	if len(samples) < layerCount {
		return nil
	}
	slices.Sort(samples)

	out := make([]int, layerCount-1)
	for i := range out {
		p := float64(i+1) / float64(layerCount)
		q := stat.Quantile(p, stat.Empirical, samples, nil)
		out[i] = int(max(0, min(255, math.Round(q))))
	}
	return ascending(out)
}

func kmeansThresholds(img image.Image, layerCount int) []int {
	samples := lumaSamples(img, 12000)
	if len(samples) < layerCount {
		return nil
	}
	dataset := make(clusters.Observations, len(samples))
	for i, l := range samples {
		dataset[i] = clusters.Coordinates{l / 255.0}
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, layerCount)
	if err != nil || len(cc) < layerCount {
		return nil
	}
	centers := make([]float64, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) > 0 {
			centers = append(centers, c.Center[0]*255.0)
		}
	}
	if len(centers) < layerCount {
		return nil
	}
	slices.Sort(centers)

	out := make([]int, layerCount-1)
	for i := range out {
		out[i] = int(max(0, min(255, math.Round((centers[i]+centers[i+1])/2))))
	}
	return ascending(out)
}

// ascending enforces a non-decreasing threshold sequence; clustering on
// skewed histograms can produce coincident centers.
func ascending(t []int) []int {
	for i := 1; i < len(t); i++ {
		t[i] = max(t[i], t[i-1])
	}
	return t
}

// lumaSamples subsamples Rec.601 luminance from opaque pixels, in [0,255].
func lumaSamples(img image.Image, maxSamples int) []float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}
	samples := make([]float64, 0, min(w*h, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			r := float64(r16 >> 8)
			g := float64(g16 >> 8)
			bl := float64(b16 >> 8)
			samples = append(samples, 0.299*r+0.587*g+0.114*bl)
		}
	}
	return samples
}
