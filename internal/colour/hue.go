package colour

import "math"

// Hue is a circular quantity: 0 and 360 are the same angle, and
// interpolation must take the shorter way around the wheel. These
// primitives are shared by every generator that touches hue.

// NormalizeHue wraps a hue angle into [0,360).
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// hueDelta returns the signed shortest arc from h1 to h2, in (-180,180].
func hueDelta(h1, h2 float64) float64 {
	diff := math.Mod(h2-h1, 360)
	if diff > 180 {
		diff -= 360
	}
	if diff <= -180 {
		diff += 360
	}
	return diff
}

// lerpHue interpolates between two hues along the shortest arc.
// A NaN hue (achromatic endpoint) yields the other endpoint's hue, so
// interpolating through grey does not spin the wheel.
func lerpHue(h1, h2, t float64) float64 {
	switch {
	case math.IsNaN(h1) && math.IsNaN(h2):
		return math.NaN()
	case math.IsNaN(h1):
		return NormalizeHue(h2)
	case math.IsNaN(h2):
		return NormalizeHue(h1)
	}
	return NormalizeHue(h1 + hueDelta(h1, h2)*t)
}

// unwrapHues lifts a sequence of hues into a continuous domain, choosing
// for each hue the representative closest to its predecessor. The result
// is suitable for spline fitting; evaluations are re-wrapped with
// NormalizeHue afterwards. NaN entries inherit the previous value.
func unwrapHues(hues []float64) []float64 {
	out := make([]float64, len(hues))
	prev := math.NaN()
	for i, h := range hues {
		if math.IsNaN(h) {
			if math.IsNaN(prev) {
				out[i] = 0
			} else {
				out[i] = prev
			}
			prev = out[i]
			continue
		}
		if math.IsNaN(prev) {
			out[i] = NormalizeHue(h)
		} else {
			out[i] = prev + hueDelta(NormalizeHue(prev), NormalizeHue(h))
		}
		prev = out[i]
	}
	return out
}

// lerp interpolates linearly between two values.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
