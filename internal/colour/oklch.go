package colour

import "math"

// OKLCH conversion maths. OKLCH is the cylindrical form of OKLab, a
// perceptually uniform colour space well suited to palette generation.
// Matrices follow the reference implementation at
// https://bottosson.github.io/posts/oklab/.

// achromaticChroma is the chroma below which a colour is treated as grey
// and its hue considered undefined.
const achromaticChroma = 1e-4

// srgbToLinear converts an sRGB component (0-1) to linear light.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSrgb converts a linear light component (0-1) to sRGB.
func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// oklabToLinearSrgb converts OKLab to linear sRGB.
// The result may lie outside [0,1] for out-of-gamut colours.
func oklabToLinearSrgb(l, a, b float64) (float64, float64, float64) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lc := lp * lp * lp
	mc := mp * mp * mp
	sc := sp * sp * sp

	r := +4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bv := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc

	return r, g, bv
}

// linearSrgbToOklab converts linear sRGB to OKLab.
func linearSrgbToOklab(r, g, b float64) (float64, float64, float64) {
	lp := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	mp := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	sp := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp = math.Cbrt(lp)
	mp = math.Cbrt(mp)
	sp = math.Cbrt(sp)

	l := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bv := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp

	return l, a, bv
}

// oklchToSrgb converts OKLCH to sRGB components without gamut mapping.
func oklchToSrgb(l, c, h float64) (float64, float64, float64) {
	if math.IsNaN(h) {
		h = 0
	}
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	rLin, gLin, bLin := oklabToLinearSrgb(l, a, b)

	return linearToSrgb(rLin), linearToSrgb(gLin), linearToSrgb(bLin)
}

// srgbToOklch converts sRGB components (0-1) to OKLCH.
// The hue of an achromatic colour is NaN.
func srgbToOklch(r, g, b float64) (float64, float64, float64) {
	l, a, bv := linearSrgbToOklab(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))

	c := math.Sqrt(a*a + bv*bv)
	if c < achromaticChroma {
		return l, c, math.NaN()
	}

	h := math.Atan2(bv, a) * 180.0 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, c, h
}

// inGamut reports whether all three components lie within [0,1].
func inGamut(r, g, b float64) bool {
	return r >= 0 && r <= 1 && g >= 0 && g <= 1 && b >= 0 && b <= 1
}

// clampOklchToSrgb converts OKLCH to in-gamut sRGB components, reducing
// chroma while preserving lightness and hue until the colour fits.
// The binary search runs to a fixed precision, so it always terminates.
func clampOklchToSrgb(l, c, h float64) (float64, float64, float64) {
	const precision = 0.0001

	if l <= 0 {
		return 0, 0, 0
	}
	if l >= 1 {
		return 1, 1, 1
	}
	if c < achromaticChroma {
		// OKLab lightness is cubed before the linear-sRGB matrix, so the
		// linear grey component is l^3, not l.
		grey := linearToSrgb(l * l * l)
		return clamp01(grey), clamp01(grey), clamp01(grey)
	}

	r, g, b := oklchToSrgb(l, c, h)
	if inGamut(r, g, b) {
		return r, g, b
	}

	low, high := 0.0, c
	for high-low > precision {
		mid := (low + high) * 0.5
		r, g, b = oklchToSrgb(l, mid, h)
		if inGamut(r, g, b) {
			low = mid
		} else {
			high = mid
		}
	}

	r, g, b = oklchToSrgb(l, low, h)
	return clamp01(r), clamp01(g), clamp01(b)
}

// clamp01 restricts a component to [0,1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// clampFloat restricts a value to [lo,hi].
func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// clampInt restricts an integer to [lo,hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
