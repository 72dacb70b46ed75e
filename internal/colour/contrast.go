package colour

import "math"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Colour) float64 {
	r := gammaCorrect(float64(c.RGB.R) / 255.0)
	g := gammaCorrect(float64(c.RGB.G) / 255.0)
	b := gammaCorrect(float64(c.RGB.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white). Meets WCAG AA for normal text at
// 4.5:1, large text at 3:1.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Colour) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// APCA contrast constants (APCA-W3 0.0.98G-4g).
const (
	apcaExponent  = 2.4
	apcaBlackThrs = 0.022
	apcaBlackClmp = 1.414
	apcaScale     = 1.14
	apcaOffset    = 0.027
	apcaClip      = 0.1

	apcaNormBG  = 0.56
	apcaNormTXT = 0.57
	apcaRevTXT  = 0.62
	apcaRevBG   = 0.65
)

// apcaLuminance computes the APCA screen luminance of a colour, with the
// soft black-level clamp applied.
func apcaLuminance(c Colour) float64 {
	linear := func(v uint8) float64 {
		return math.Pow(float64(v)/255.0, apcaExponent)
	}
	y := 0.2126729*linear(c.RGB.R) + 0.7151522*linear(c.RGB.G) + 0.0721750*linear(c.RGB.B)
	if y < apcaBlackThrs {
		y += math.Pow(apcaBlackThrs-y, apcaBlackClmp)
	}
	return y
}

// APCAContrast calculates the APCA lightness contrast Lc between text and
// background colours. The result is polarity-aware: roughly +100 for
// black on white, -105 for white on black, and 0 where the contrast is
// below the sub-perceptible threshold.
func APCAContrast(text, background Colour) float64 {
	yTxt := apcaLuminance(text)
	yBg := apcaLuminance(background)

	var sapc float64
	if yBg > yTxt {
		// Dark text on light background.
		sapc = (math.Pow(yBg, apcaNormBG) - math.Pow(yTxt, apcaNormTXT)) * apcaScale
		if sapc < apcaClip {
			return 0
		}
		return (sapc - apcaOffset) * 100
	}

	// Light text on dark background.
	sapc = (math.Pow(yBg, apcaRevBG) - math.Pow(yTxt, apcaRevTXT)) * apcaScale
	if sapc > -apcaClip {
		return 0
	}
	return (sapc + apcaOffset) * 100
}

// BestTextColour returns white or black, whichever reads better against
// the given background according to APCA contrast magnitude.
func BestTextColour(background Colour) Colour {
	white := FromRGB(255, 255, 255)
	black := FromRGB(0, 0, 0)

	if math.Abs(APCAContrast(white, background)) > math.Abs(APCAContrast(black, background)) {
		return white
	}
	return black
}

// QuickTextColour is a fast approximation of BestTextColour for
// latency-sensitive repeated calls: it thresholds on OKLCH lightness
// instead of computing APCA.
func QuickTextColour(background Colour) Colour {
	if background.OKLCH.L < 0.6 {
		return FromRGB(255, 255, 255)
	}
	return FromRGB(0, 0, 0)
}
