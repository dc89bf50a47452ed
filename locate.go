package tooltip

import "math"

// Locate resolves a pointer sample to the nearest anchor. The closest value
// of xs wins, the earliest one on a tie. When several anchors share that x,
// their y values are reduced the same way against the pointer's y.
// It reports false when xs is empty.
func Locate(pointer Point, xs []float64, atX func(x float64) []Anchor) (Anchor, bool) {
	x, ok := closest(pointer.X, xs)
	if !ok {
		return Anchor{}, false
	}

	candidates := atX(x)
	switch len(candidates) {
	case 0:
		return Anchor{}, false
	case 1:
		return candidates[0], true
	}

	ys := make([]float64, len(candidates))
	for i, a := range candidates {
		ys[i] = a.Y
	}
	y, _ := closest(pointer.Y, ys)
	for _, a := range candidates {
		if a.X == x && a.Y == y {
			return a, true
		}
	}
	return Anchor{}, false
}

// closest returns the value of values nearest to n, keeping the first one
// encountered when distances are equal.
func closest(n float64, values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best := values[0]
	bestD := math.Abs(best - n)
	for _, v := range values[1:] {
		if d := math.Abs(v - n); d < bestD {
			best, bestD = v, d
		}
	}
	return best, true
}
