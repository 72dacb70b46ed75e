package colour

import "fmt"

// Space selects the working colour space for a generator. OKLCH is the
// default; HSL is offered for callers that want classic colour-wheel
// behaviour.
type Space string

const (
	SpaceOklch Space = "oklch"
	SpaceHSL   Space = "hsl"
)

// Kind identifies a generator family for the unified Generate entry point.
type Kind string

const (
	KindHarmony     Kind = "harmony"
	KindVariation   Kind = "variation"
	KindMatrix      Kind = "matrix"
	KindInterpolate Kind = "interpolate"
	KindColourful   Kind = "colourful"
)

// Config is implemented by every per-generator option set.
type Config interface {
	// normalise clamps out-of-range options into their valid ranges.
	normalise()
}

// Generate is the single engine entry point used by presentation code:
// it dispatches to the generator selected by kind and returns the ordered
// colour sequence. The base colour is required by every kind except
// colourful; interpolation reads its control points from its config.
func Generate(kind Kind, base *Colour, cfg Config, space Space) ([]Colour, error) {
	if space != SpaceHSL {
		space = SpaceOklch
	}

	switch kind {
	case KindHarmony:
		c, ok := cfg.(*HarmonyConfig)
		if !ok {
			return nil, fmt.Errorf("harmony generator requires *HarmonyConfig, got %T", cfg)
		}
		if base == nil {
			return nil, fmt.Errorf("harmony generator requires a base colour")
		}
		return Harmony(*base, *c, space), nil

	case KindVariation:
		c, ok := cfg.(*VariationConfig)
		if !ok {
			return nil, fmt.Errorf("variation generator requires *VariationConfig, got %T", cfg)
		}
		if base == nil {
			return nil, fmt.Errorf("variation generator requires a base colour")
		}
		return Variations(*base, *c, space), nil

	case KindMatrix:
		c, ok := cfg.(*MatrixConfig)
		if !ok {
			return nil, fmt.Errorf("matrix generator requires *MatrixConfig, got %T", cfg)
		}
		if base == nil {
			return nil, fmt.Errorf("matrix generator requires a base colour")
		}
		return TonalMatrix(*base, *c, space).Flatten(), nil

	case KindInterpolate:
		c, ok := cfg.(*InterpolationConfig)
		if !ok {
			return nil, fmt.Errorf("interpolation engine requires *InterpolationConfig, got %T", cfg)
		}
		return Interpolate(*c, space), nil

	case KindColourful:
		c, ok := cfg.(*ColourfulConfig)
		if !ok {
			return nil, fmt.Errorf("colourful generator requires *ColourfulConfig, got %T", cfg)
		}
		return Colourful(*c, space), nil
	}

	return nil, fmt.Errorf("unknown generator kind: %q", kind)
}
