package colour

import "math"

// VariationType selects a variation curve applied along the sequence.
type VariationType string

const (
	Monochromatic      VariationType = "monochromatic"
	Shades             VariationType = "shades"
	Tints              VariationType = "tints"
	Tones              VariationType = "tones"
	Temperature        VariationType = "temperature"
	SaturationGradient VariationType = "saturation-gradient"
	LightnessGradient  VariationType = "lightness-gradient"
)

// VariationConfig holds the options for the variation generator.
type VariationConfig struct {
	Type VariationType

	// Count is the number of samples along the curve, at least 2.
	// Default 10.
	Count int
}

// DefaultVariationConfig returns a VariationConfig with documented defaults.
func DefaultVariationConfig(t VariationType) VariationConfig {
	return VariationConfig{Type: t, Count: 10}
}

func (c *VariationConfig) normalise() {
	if c.Count == 0 {
		c.Count = 10
	}
	if c.Count < 2 {
		c.Count = 2
	}
}

// Variations samples a documented curve over the base colour, producing
// count colours at t = i/(count-1). The curves are defined in OKLCH with
// a scaled HSL formulation for the HSL space.
func Variations(base Colour, cfg VariationConfig, space Space) []Colour {
	cfg.normalise()

	out := make([]Colour, cfg.Count)
	for i := range out {
		t := float64(i) / float64(cfg.Count-1)
		if space == SpaceHSL {
			out[i] = variationHsl(base, cfg.Type, t)
		} else {
			out[i] = variationOklch(base, cfg.Type, t)
		}
	}
	return out
}

func variationOklch(base Colour, vt VariationType, t float64) Colour {
	l, c := base.OKLCH.L, base.OKLCH.C
	h := base.OKLCH.H
	if math.IsNaN(h) {
		h = 0
	}

	switch vt {
	case Monochromatic:
		l = 0.15 + 0.75*t
		c *= 1 - sq((l-0.5)/0.5)*0.5
	case Shades:
		l = math.Max(0.05, l*(1-0.85*t))
		c *= 1 - 0.3*t
	case Tints:
		l += (0.97 - l) * t
		c *= 1 - 0.7*t
	case Tones:
		c *= 1 - 0.9*t
	case Temperature:
		h = 240 - 210*t
		c *= 0.8
	case SaturationGradient:
		c = 0.01 + 0.28*t
	case LightnessGradient:
		l = 0.1 + 0.85*t
		c *= 1 - sq((l-0.55)/0.55)*0.4
	}

	return FromOklch(l, c, NormalizeHue(h))
}

// variationHsl applies the analogous curve with lightness and saturation
// scaled to percent.
func variationHsl(base Colour, vt VariationType, t float64) Colour {
	h, s, l := base.HSL.H, base.HSL.S, base.HSL.L

	switch vt {
	case Monochromatic:
		l = 15 + 75*t
		s *= 1 - sq((l-50)/50)*0.5
	case Shades:
		l = math.Max(5, l*(1-0.85*t))
		s *= 1 - 0.3*t
	case Tints:
		l += (97 - l) * t
		s *= 1 - 0.7*t
	case Tones:
		s *= 1 - 0.9*t
	case Temperature:
		h = 240 - 210*t
		s *= 0.8
	case SaturationGradient:
		s = 4 + 92*t
	case LightnessGradient:
		l = 10 + 85*t
		s *= 1 - sq((l-55)/55)*0.4
	}

	return FromHsl(NormalizeHue(h), s, l)
}

func sq(v float64) float64 { return v * v }
