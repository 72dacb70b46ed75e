package colour

import "math"

// HarmonyType selects a classic colour-wheel harmony.
type HarmonyType string

const (
	Complementary      HarmonyType = "complementary"
	SplitComplementary HarmonyType = "split-complementary"
	Triadic            HarmonyType = "triadic"
	Tetradic           HarmonyType = "tetradic"
	Analogous          HarmonyType = "analogous"
	GoldenRatio        HarmonyType = "golden-ratio"
)

// GoldenAngle distributes points around a circle with minimal overlap.
const GoldenAngle = 137.507764

// HarmonyConfig holds the options for the harmony generator.
type HarmonyConfig struct {
	Type HarmonyType

	// Count is the number of colours for golden-ratio harmonies,
	// clamped to [3,200]. Default 5.
	Count int

	// Spread is the analogous hue step in degrees, clamped to [5,90].
	// Default 30.
	Spread float64
}

// DefaultHarmonyConfig returns a HarmonyConfig with documented defaults.
func DefaultHarmonyConfig(t HarmonyType) HarmonyConfig {
	return HarmonyConfig{Type: t, Count: 5, Spread: 30}
}

func (c *HarmonyConfig) normalise() {
	if c.Count == 0 {
		c.Count = 5
	}
	if c.Spread == 0 {
		c.Spread = 30
	}
	c.Count = clampInt(c.Count, 3, 200)
	c.Spread = clampFloat(c.Spread, 5, 90)
}

// Harmony generates a hue harmony from the base colour. Every variant
// varies hue only, holding the base's chroma and lightness (OKLCH) or
// saturation and lightness (HSL) fixed.
func Harmony(base Colour, cfg HarmonyConfig, space Space) []Colour {
	cfg.normalise()

	var offsets []float64
	switch cfg.Type {
	case Complementary:
		offsets = []float64{0, 180}
	case SplitComplementary:
		offsets = []float64{0, 150, 210}
	case Triadic:
		offsets = []float64{0, 120, 240}
	case Tetradic:
		offsets = []float64{0, 90, 180, 270}
	case Analogous:
		offsets = []float64{-2 * cfg.Spread, -cfg.Spread, 0, cfg.Spread, 2 * cfg.Spread}
	case GoldenRatio:
		offsets = make([]float64, cfg.Count)
		for i := range offsets {
			offsets[i] = float64(i) * GoldenAngle
		}
	default:
		offsets = []float64{0}
	}

	baseHue := base.OKLCH.H
	if space == SpaceHSL {
		baseHue = base.HSL.H
	}
	if math.IsNaN(baseHue) {
		baseHue = 0
	}

	out := make([]Colour, len(offsets))
	for i, off := range offsets {
		h := NormalizeHue(baseHue + off)
		if space == SpaceHSL {
			out[i] = FromHsl(h, base.HSL.S, base.HSL.L)
		} else {
			out[i] = FromOklch(base.OKLCH.L, base.OKLCH.C, h)
		}
	}
	return out
}
