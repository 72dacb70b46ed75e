package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Literal patterns accepted by Parse. These mirror the CSS colour
// functions: values may be separated by commas or whitespace, and hsl
// percentages may carry a % sign.
var (
	hexPattern   = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
	rgbPattern   = regexp.MustCompile(`^rgba?\s*\(\s*([0-9.]+)\s*[,\s]\s*([0-9.]+)\s*[,\s]\s*([0-9.]+)`)
	hslPattern   = regexp.MustCompile(`^hsla?\s*\(\s*([0-9.-]+)(?:deg)?\s*[,\s]\s*([0-9.]+)%?\s*[,\s]\s*([0-9.]+)%?`)
	oklchPattern = regexp.MustCompile(`^oklch\s*\(\s*([0-9.]+%?)\s+([0-9.]+)\s+([0-9.-]+)`)
)

// Parse interprets a colour literal in hex, rgb(), hsl() or oklch() form
// and returns the canonical Colour. Unrecognised input yields an error
// wrapping ErrInvalidColourFormat; no fallback colour is substituted.
func Parse(input string) (Colour, error) {
	s := strings.TrimSpace(strings.ToLower(input))

	switch {
	case hexPattern.MatchString(s):
		return FromHex(s)

	case strings.HasPrefix(s, "rgb"):
		m := rgbPattern.FindStringSubmatch(s)
		if m == nil {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, input)
		}
		r, g, b := parseComponent(m[1]), parseComponent(m[2]), parseComponent(m[3])
		return FromRGB(
			uint8(clampInt(int(r+0.5), 0, 255)),
			uint8(clampInt(int(g+0.5), 0, 255)),
			uint8(clampInt(int(b+0.5), 0, 255)),
		), nil

	case strings.HasPrefix(s, "hsl"):
		m := hslPattern.FindStringSubmatch(s)
		if m == nil {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, input)
		}
		return FromHsl(parseComponent(m[1]), parseComponent(m[2]), parseComponent(m[3])), nil

	case strings.HasPrefix(s, "oklch"):
		m := oklchPattern.FindStringSubmatch(s)
		if m == nil {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, input)
		}
		l := parseComponent(strings.TrimSuffix(m[1], "%"))
		if strings.HasSuffix(m[1], "%") {
			l /= 100
		}
		return FromOklch(l, parseComponent(m[2]), parseComponent(m[3])), nil
	}

	return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, input)
}

// parseComponent parses a numeric colour component. The regexes guarantee
// a valid float, so conversion errors are ignored.
func parseComponent(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64) //nolint:errcheck
	return v
}
