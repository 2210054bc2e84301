package inkstack

// luma is the Rec.601 perceptual weighting of an RGB triple, in [0,255].
// No gamma correction; bands are judged on stored channel values.
func luma(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// bucketOf maps a luminance to a tonal band given ascending thresholds.
// The band is the index of the first threshold strictly greater than the
// luminance; a luminance equal to a threshold falls into the next
// (lighter) band. Past every threshold lies band len(sorted), the paper.
func bucketOf(lum float64, sorted []int) int {
	for i, t := range sorted {
		if lum < float64(t) {
			return i
		}
	}
	return len(sorted)
}
