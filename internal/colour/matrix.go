package colour

import "math"

// MatrixHues selects the hue rows of a tonal matrix.
type MatrixHues string

const (
	// HuesBase uses the base hue only (a single row).
	HuesBase MatrixHues = "base"
	// HuesTriadic adds rows at +120 and +240 degrees.
	HuesTriadic MatrixHues = "triadic"
	// HuesTetradic adds rows at +90, +180 and +270 degrees.
	HuesTetradic MatrixHues = "tetradic"
	// HuesEven spreads HueCount rows evenly around the wheel.
	HuesEven MatrixHues = "even"
)

// DefaultSteps is the standard 11-value tonal scale.
var DefaultSteps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// MatrixConfig holds the options for the tonal matrix generator.
type MatrixConfig struct {
	// Steps is the ordered tonal scale. Defaults to DefaultSteps.
	Steps []int

	// Hues selects the hue preset. Defaults to HuesBase.
	Hues MatrixHues

	// HueCount is the row count for the HuesEven preset, clamped to
	// [2,12]. Default 6.
	HueCount int
}

func (c *MatrixConfig) normalise() {
	if len(c.Steps) == 0 {
		c.Steps = DefaultSteps
	}
	if c.Hues == "" {
		c.Hues = HuesBase
	}
	if c.HueCount == 0 {
		c.HueCount = 6
	}
	c.HueCount = clampInt(c.HueCount, 2, 12)
}

// Matrix is a 2-D tonal matrix indexed [hue][step]. Rows follow the
// configured hue order; columns follow the configured step order.
type Matrix struct {
	Hues  []float64
	Steps []int
	Grid  [][]Colour
}

// Flatten returns the matrix colours row by row, the ordering used for
// export.
func (m *Matrix) Flatten() []Colour {
	out := make([]Colour, 0, len(m.Hues)*len(m.Steps))
	for _, row := range m.Grid {
		out = append(out, row...)
	}
	return out
}

// StepToLightness maps a tonal step to an OKLCH lightness. The mapping is
// monotonically decreasing: step 50 is near-white, step 950 near-black.
func StepToLightness(step int) float64 {
	return 0.97 - (float64(step)/1000)*0.87
}

// chromaAtLightness attenuates the base chroma parabolically, peaking at
// L=0.55, with a floor of 30% and a ceiling of 120% of the base chroma.
func chromaAtLightness(baseChroma, l float64) float64 {
	attn := 1.2 * (1 - sq((l-0.55)/0.55))
	return baseChroma * clampFloat(attn, 0.3, 1.2)
}

// TonalMatrix builds a matrix of tonal scales from the base colour, one
// row per hue, one column per step.
func TonalMatrix(base Colour, cfg MatrixConfig, space Space) *Matrix {
	cfg.normalise()

	baseHue := base.OKLCH.H
	if space == SpaceHSL {
		baseHue = base.HSL.H
	}
	if math.IsNaN(baseHue) {
		baseHue = 0
	}

	var hues []float64
	switch cfg.Hues {
	case HuesTriadic:
		hues = []float64{baseHue, baseHue + 120, baseHue + 240}
	case HuesTetradic:
		hues = []float64{baseHue, baseHue + 90, baseHue + 180, baseHue + 270}
	case HuesEven:
		hues = make([]float64, cfg.HueCount)
		for i := range hues {
			hues[i] = baseHue + float64(i)*360/float64(cfg.HueCount)
		}
	default:
		hues = []float64{baseHue}
	}
	for i := range hues {
		hues[i] = NormalizeHue(hues[i])
	}

	grid := make([][]Colour, len(hues))
	for hi, hue := range hues {
		row := make([]Colour, len(cfg.Steps))
		for si, step := range cfg.Steps {
			if space == SpaceHSL {
				l := clampFloat(float64(1000-step)/10, 5, 98)
				s := saturationAtLightness(base.HSL.S, l)
				row[si] = FromHsl(hue, s, l)
			} else {
				l := StepToLightness(step)
				c := chromaAtLightness(base.OKLCH.C, l)
				row[si] = FromOklch(l, c, hue)
			}
		}
		grid[hi] = row
	}

	return &Matrix{Hues: hues, Steps: append([]int(nil), cfg.Steps...), Grid: grid}
}

// saturationAtLightness is the HSL analogue of chromaAtLightness, with
// lightness in percent.
func saturationAtLightness(baseSat, l float64) float64 {
	attn := 1.2 * (1 - sq((l-55)/55))
	return clampFloat(baseSat*clampFloat(attn, 0.3, 1.2), 0, 100)
}
