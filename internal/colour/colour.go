// Package colour provides the perceptual colour engine: a canonical
// multi-representation colour value with lossless conversion among
// hex/RGB/OKLCH/HSL, sRGB gamut clamping, palette generators, an
// interpolation engine and image colour extraction.
package colour

import (
	"encoding/json"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// OKLCH represents a colour in OKLCH space: lightness in [0,1], chroma >= 0
// and hue in degrees [0,360). Hue is NaN for achromatic colours.
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// String returns the OKLCH colour as a CSS oklch() string.
func (o OKLCH) String() string {
	h := o.H
	if math.IsNaN(h) {
		h = 0
	}
	return fmt.Sprintf("oklch(%.4f %.4f %.1f)", o.L, o.C, h)
}

// MarshalJSON renders an achromatic hue as 0, since JSON cannot carry NaN.
func (o OKLCH) MarshalJSON() ([]byte, error) {
	h := o.H
	if math.IsNaN(h) {
		h = 0
	}
	return json.Marshal(struct {
		L float64 `json:"l"`
		C float64 `json:"c"`
		H float64 `json:"h"`
	}{o.L, o.C, h})
}

// HSL represents a colour in HSL space: hue in degrees [0,360),
// saturation and lightness in percent [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour as a CSS hsl() string.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", h.H, h.S, h.L)
}

// CSS holds pre-formatted CSS strings for a colour, so exporters can
// render rgb()/hsl()/oklch() values without recomputation.
type CSS struct {
	RGB   string `json:"rgb"`
	HSL   string `json:"hsl"`
	OKLCH string `json:"oklch"`
}

// Colour is an immutable colour value carrying four representations of the
// same sRGB-clamped colour. Constructing from any one representation
// regenerates the other three consistently. Generators never mutate a
// Colour; they build new values and return ordered sequences.
type Colour struct {
	Hex   string `json:"hex"`
	RGB   RGB    `json:"rgb"`
	OKLCH OKLCH  `json:"oklch"`
	HSL   HSL    `json:"hsl"`
	CSS   CSS    `json:"css"`
}

// fromComponents builds a Colour from sRGB float components in [0,1].
// The OKLCH triple is derived unless an exact one is supplied by the
// constructor (FromOklch preserves the requested lightness and hue).
func fromComponents(r, g, b float64, okl *OKLCH) Colour {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)

	// Round to 8-bit only here, at the sRGB boundary.
	rgb := RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}

	var ok OKLCH
	if okl != nil {
		ok = *okl
	} else {
		l, c, h := srgbToOklch(r, g, b)
		ok = OKLCH{L: l, C: c, H: h}
	}

	hue, sat, light := colorful.Color{R: r, G: g, B: b}.Hsl()
	hsl := HSL{H: NormalizeHue(hue), S: sat * 100, L: light * 100}

	return Colour{
		Hex:   rgb.Hex(),
		RGB:   rgb,
		OKLCH: ok,
		HSL:   hsl,
		CSS: CSS{
			RGB:   rgb.String(),
			HSL:   hsl.String(),
			OKLCH: ok.String(),
		},
	}
}

// FromRGB constructs a Colour from 8-bit RGB components.
func FromRGB(r, g, b uint8) Colour {
	return fromComponents(float64(r)/255, float64(g)/255, float64(b)/255, nil)
}

// FromHex constructs a Colour from a hex string ("#abc" or "#aabbcc").
func FromHex(hex string) (Colour, error) {
	// Shape-check before delegating: colorful.Hex tolerates irregular
	// lengths like "#12345".
	if !hexPattern.MatchString(hex) {
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}
	if len(hex) == 4 {
		hex = fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, hex)
	}
	return fromComponents(c.R, c.G, c.B, nil), nil
}

// FromOklch constructs a Colour from OKLCH coordinates. Out-of-gamut
// chroma is reduced, preserving lightness and hue, until the induced sRGB
// triple is displayable; the stored OKLCH reflects the clamped chroma.
func FromOklch(l, c, h float64) Colour {
	l = clamp01(l)
	c = math.Max(0, c)
	h = NormalizeHue(h)

	r, g, b := oklchToSrgb(l, c, h)
	if !inGamut(r, g, b) {
		r, g, b = clampOklchToSrgb(l, c, h)
		// Keep the requested lightness and hue; recover the chroma
		// that actually survived the clamp.
		_, effC, _ := srgbToOklch(r, g, b)
		c = math.Min(c, effC)
	}
	if c < achromaticChroma {
		h = math.NaN()
	}

	okl := OKLCH{L: l, C: c, H: h}
	return fromComponents(r, g, b, &okl)
}

// FromHsl constructs a Colour from HSL coordinates: hue in degrees,
// saturation and lightness in percent [0,100].
func FromHsl(h, s, l float64) Colour {
	h = NormalizeHue(h)
	s = clampFloat(s, 0, 100)
	l = clampFloat(l, 0, 100)

	c := colorful.Hsl(h, s/100, l/100).Clamped()
	return fromComponents(c.R, c.G, c.B, nil)
}
