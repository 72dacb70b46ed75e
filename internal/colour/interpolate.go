package colour

import "math"

// InterpolationMethod selects the curve fitted through the control points.
type InterpolationMethod string

const (
	Linear     InterpolationMethod = "linear"
	CatmullRom InterpolationMethod = "catmull-rom"
)

// InterpolationConfig holds the options for the interpolation engine.
type InterpolationConfig struct {
	// Points are the ordered control-point colours.
	Points []Colour

	// Method is the interpolation method. Defaults to Linear.
	Method InterpolationMethod

	// Steps is the output length, at least 2. With fewer than 2 steps
	// only the first and last control points are returned.
	Steps int
}

func (c *InterpolationConfig) normalise() {
	if c.Method == "" {
		c.Method = Linear
	}
}

// channels extracts the per-space interpolation channels of a colour:
// two linear quantities and the circular hue.
func channels(c Colour, space Space) (a, b, hue float64) {
	if space == SpaceHSL {
		return c.HSL.S, c.HSL.L, c.HSL.H
	}
	return c.OKLCH.L, c.OKLCH.C, c.OKLCH.H
}

// build converts interpolated channels back into a Colour, clamping to
// the valid ranges of the space so spline overshoot cannot produce an
// invalid colour.
func build(a, b, hue float64, space Space) Colour {
	if space == SpaceHSL {
		return FromHsl(NormalizeHue(hue), clampFloat(a, 0, 100), clampFloat(b, 0, 100))
	}
	return FromOklch(clampFloat(a, 0, 1), math.Max(0, b), NormalizeHue(hue))
}

// Interpolate produces a gradient of steps colours through the ordered
// control points. Hue is treated as a circular quantity: linear segments
// take the shortest arc, and the Catmull-Rom spline unwraps hue into a
// continuous domain before fitting.
func Interpolate(cfg InterpolationConfig, space Space) []Colour {
	cfg.normalise()

	points := cfg.Points
	switch len(points) {
	case 0:
		return nil
	case 1:
		return []Colour{points[0]}
	}
	if cfg.Steps < 2 {
		return []Colour{points[0], points[len(points)-1]}
	}

	// A spline needs at least 3 control points to differ from a line.
	method := cfg.Method
	if method == CatmullRom && len(points) < 3 {
		method = Linear
	}

	out := make([]Colour, cfg.Steps)
	out[0] = points[0]
	out[cfg.Steps-1] = points[len(points)-1]

	for i := 1; i < cfg.Steps-1; i++ {
		t := float64(i) / float64(cfg.Steps-1)
		if method == CatmullRom {
			out[i] = splineAt(points, t, space)
		} else {
			out[i] = linearAt(points, t, space)
		}
	}
	return out
}

// linearAt evaluates the piecewise-linear gradient at global position
// t in [0,1], mapped across the n-1 segments.
func linearAt(points []Colour, t float64, space Space) Colour {
	pos := t * float64(len(points)-1)
	seg := int(pos)
	if seg > len(points)-2 {
		seg = len(points) - 2
	}
	localT := pos - float64(seg)

	a1, b1, h1 := channels(points[seg], space)
	a2, b2, h2 := channels(points[seg+1], space)

	return build(lerp(a1, a2, localT), lerp(b1, b2, localT), lerpHue(h1, h2, localT), space)
}

// splineAt evaluates a Catmull-Rom spline at global position t in [0,1].
// Segment neighbours are clamped at the sequence boundaries by reusing
// the first and last control points.
func splineAt(points []Colour, t float64, space Space) Colour {
	n := len(points)
	pos := t * float64(n-1)
	seg := int(pos)
	if seg > n-2 {
		seg = n - 2
	}
	localT := pos - float64(seg)

	idx := func(i int) int { return clampInt(i, 0, n-1) }
	window := []Colour{
		points[idx(seg-1)], points[seg], points[seg+1], points[idx(seg+2)],
	}

	var as, bs, hs [4]float64
	rawHues := make([]float64, 4)
	for i, p := range window {
		as[i], bs[i], rawHues[i] = channels(p, space)
	}
	// Unwrap hue so the spline never crosses a 360/0 seam.
	for i, h := range unwrapHues(rawHues) {
		hs[i] = h
	}

	a := catmullRom(as[0], as[1], as[2], as[3], localT)
	b := catmullRom(bs[0], bs[1], bs[2], bs[3], localT)
	h := NormalizeHue(catmullRom(hs[0], hs[1], hs[2], hs[3], localT))

	return build(a, b, h, space)
}

// catmullRom evaluates the uniform Catmull-Rom basis for one channel.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}
