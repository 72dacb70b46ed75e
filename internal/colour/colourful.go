package colour

import "math/rand"

// ColourfulMethod selects a generation style for base-free palettes.
type ColourfulMethod string

const (
	Spectrum ColourfulMethod = "spectrum"
	Vibrant  ColourfulMethod = "vibrant"
	Pastel   ColourfulMethod = "pastel"
	Dark     ColourfulMethod = "dark"
	Neon     ColourfulMethod = "neon"
	Warm     ColourfulMethod = "warm"
	Cool     ColourfulMethod = "cool"
	Earth    ColourfulMethod = "earth"
	Random   ColourfulMethod = "random"
)

// ColourfulConfig holds the options for the colourful generator, which
// needs no base colour. The Fixed* fields override the family defaults
// for their parameter; units follow the working space (lightness 0-1 and
// chroma for OKLCH, saturation/lightness percent for HSL).
type ColourfulConfig struct {
	Method ColourfulMethod

	// Count is the number of colours, clamped to [1,200]. Default 8.
	Count int

	// Seed initialises the per-call PRNG; identical seeds reproduce
	// identical palettes.
	Seed int64

	// Shuffle reorders the output with a seeded Fisher-Yates pass.
	Shuffle bool

	FixedLightness  *float64
	FixedChroma     *float64
	FixedSaturation *float64
}

func (c *ColourfulConfig) normalise() {
	if c.Method == "" {
		c.Method = Spectrum
	}
	if c.Count == 0 {
		c.Count = 8
	}
	c.Count = clampInt(c.Count, 1, 200)
}

// family holds the default parameters of a styled method: OKLCH
// lightness/chroma and HSL saturation/lightness percent.
type family struct {
	l, c, s, lp float64
}

var families = map[ColourfulMethod]family{
	Spectrum: {l: 0.70, c: 0.15, s: 75, lp: 60},
	Vibrant:  {l: 0.65, c: 0.22, s: 85, lp: 55},
	Pastel:   {l: 0.87, c: 0.06, s: 65, lp: 85},
	Dark:     {l: 0.32, c: 0.11, s: 65, lp: 28},
	Neon:     {l: 0.72, c: 0.28, s: 100, lp: 60},
	Warm:     {l: 0.68, c: 0.16, s: 80, lp: 58},
	Cool:     {l: 0.62, c: 0.14, s: 70, lp: 55},
	Earth:    {l: 0.55, c: 0.07, s: 32, lp: 45},
}

// hueRange restricts styled methods to a slice of the wheel: start plus
// width degrees, wrapping past 360.
type hueRange struct {
	start, width float64
}

var hueRanges = map[ColourfulMethod]hueRange{
	Warm:  {start: 300, width: 140}, // [300,360) then [0,80)
	Cool:  {start: 120, width: 160}, // [120,280]
	Earth: {start: 20, width: 70},   // [20,90]
}

// Colourful generates count colours without a base colour. The PRNG is
// seeded once per call and never shared, so results are reproducible
// under concurrent use. Non-random methods divide their hue range evenly
// and are naturally hue-sorted; Shuffle reorders them with the same
// seeded generator.
func Colourful(cfg ColourfulConfig, space Space) []Colour {
	cfg.normalise()
	rng := rand.New(rand.NewSource(cfg.Seed))

	out := make([]Colour, cfg.Count)
	for i := range out {
		if cfg.Method == Random {
			out[i] = randomColour(cfg, rng, space)
			continue
		}
		out[i] = styledColour(cfg, i, rng, space)
	}

	if cfg.Shuffle && cfg.Method != Random {
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}

// styledColour produces the i-th colour of an even hue division, using
// the method's family defaults unless overridden. Restricted-range
// methods add a small seeded jitter to their tonal parameters so the
// palette does not look machine-flat.
func styledColour(cfg ColourfulConfig, i int, rng *rand.Rand, space Space) Colour {
	fam := families[cfg.Method]

	start, width := 0.0, 360.0
	jitter := 0.0
	if r, ok := hueRanges[cfg.Method]; ok {
		start, width = r.start, r.width
		jitter = 1.0
	}
	hue := NormalizeHue(start + float64(i)*width/float64(cfg.Count))

	if space == SpaceHSL {
		s := fam.s
		l := fam.lp
		if cfg.FixedSaturation != nil {
			s = *cfg.FixedSaturation
		} else {
			s += jitter * (rng.Float64()*10 - 5)
		}
		if cfg.FixedLightness != nil {
			l = *cfg.FixedLightness
		} else {
			l += jitter * (rng.Float64()*8 - 4)
		}
		return FromHsl(hue, s, l)
	}

	l := fam.l
	c := fam.c
	if cfg.FixedLightness != nil {
		l = *cfg.FixedLightness
	} else {
		l += jitter * (rng.Float64()*0.08 - 0.04)
	}
	if cfg.FixedChroma != nil {
		c = *cfg.FixedChroma
	} else {
		c += jitter * (rng.Float64()*0.03 - 0.015)
	}
	return FromOklch(l, c, hue)
}

// randomColour draws every channel uniformly, bypassing hue sorting.
func randomColour(cfg ColourfulConfig, rng *rand.Rand, space Space) Colour {
	hue := rng.Float64() * 360

	if space == SpaceHSL {
		s := rng.Float64() * 100
		l := rng.Float64() * 100
		if cfg.FixedSaturation != nil {
			s = *cfg.FixedSaturation
		}
		if cfg.FixedLightness != nil {
			l = *cfg.FixedLightness
		}
		return FromHsl(hue, s, l)
	}

	l := rng.Float64()
	c := rng.Float64() * 0.37
	if cfg.FixedLightness != nil {
		l = *cfg.FixedLightness
	}
	if cfg.FixedChroma != nil {
		c = *cfg.FixedChroma
	}
	return FromOklch(l, c, hue)
}
