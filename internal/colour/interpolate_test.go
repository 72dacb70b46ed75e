package colour

import (
	"math"
	"testing"
)

func TestInterpolateEdgeCases(t *testing.T) {
	red, _ := FromHex("#ff0000")
	blue, _ := FromHex("#0000ff")

	if got := Interpolate(InterpolationConfig{Steps: 5}, SpaceOklch); got != nil {
		t.Errorf("no control points: got %d colours, want nil", len(got))
	}

	got := Interpolate(InterpolationConfig{Points: []Colour{red}, Steps: 5}, SpaceOklch)
	if len(got) != 1 || got[0].Hex != red.Hex {
		t.Errorf("single control point: got %v", got)
	}

	got = Interpolate(InterpolationConfig{Points: []Colour{red, blue}, Steps: 1}, SpaceOklch)
	if len(got) != 2 || got[0].Hex != red.Hex || got[1].Hex != blue.Hex {
		t.Errorf("steps<2: got %v, want endpoints only", got)
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	red, _ := FromHex("#ff0000")
	green, _ := FromHex("#00ff00")
	blue, _ := FromHex("#0000ff")

	for _, method := range []InterpolationMethod{Linear, CatmullRom} {
		got := Interpolate(InterpolationConfig{
			Points: []Colour{red, green, blue},
			Method: method,
			Steps:  7,
		}, SpaceOklch)

		if len(got) != 7 {
			t.Fatalf("%s: got %d colours, want 7", method, len(got))
		}
		if got[0].Hex != red.Hex {
			t.Errorf("%s: first colour %s, want %s", method, got[0].Hex, red.Hex)
		}
		if got[6].Hex != blue.Hex {
			t.Errorf("%s: last colour %s, want %s", method, got[6].Hex, blue.Hex)
		}
	}
}

func TestInterpolateShortestHueArc(t *testing.T) {
	// Red (hue ~29) to blue (hue ~264): the shortest arc runs through
	// magenta, not through green.
	red, _ := FromHex("#ff0000")
	blue, _ := FromHex("#0000ff")

	got := Interpolate(InterpolationConfig{
		Points: []Colour{red, blue},
		Steps:  3,
	}, SpaceOklch)

	mid := got[1].OKLCH.H
	if math.IsNaN(mid) {
		t.Fatal("midpoint is achromatic")
	}
	if mid > 45 && mid < 280 {
		t.Errorf("midpoint hue %.1f crosses the green side, want magenta arc", mid)
	}
}

func TestInterpolateLinearLightness(t *testing.T) {
	dark := FromOklch(0.2, 0.05, 100)
	light := FromOklch(0.8, 0.05, 100)

	got := Interpolate(InterpolationConfig{
		Points: []Colour{dark, light},
		Steps:  5,
	}, SpaceOklch)

	for i, want := range []float64{0.2, 0.35, 0.5, 0.65, 0.8} {
		if math.Abs(got[i].OKLCH.L-want) > 1e-9 {
			t.Errorf("step %d lightness = %.4f, want %.4f", i, got[i].OKLCH.L, want)
		}
	}
}

func TestInterpolateCatmullRomTwoPoints(t *testing.T) {
	// With fewer than 3 control points the spline degrades to linear.
	a := FromOklch(0.3, 0.1, 40)
	b := FromOklch(0.7, 0.1, 40)

	spline := Interpolate(InterpolationConfig{Points: []Colour{a, b}, Method: CatmullRom, Steps: 5}, SpaceOklch)
	linear := Interpolate(InterpolationConfig{Points: []Colour{a, b}, Method: Linear, Steps: 5}, SpaceOklch)

	for i := range spline {
		if spline[i].Hex != linear[i].Hex {
			t.Errorf("step %d: spline %s != linear %s", i, spline[i].Hex, linear[i].Hex)
		}
	}
}

func TestInterpolateCatmullRomNearControlPoints(t *testing.T) {
	points := []Colour{
		FromOklch(0.3, 0.08, 20),
		FromOklch(0.55, 0.12, 140),
		FromOklch(0.8, 0.06, 260),
	}

	// Steps chosen so an interior sample lands exactly on the middle
	// control point.
	got := Interpolate(InterpolationConfig{Points: points, Method: CatmullRom, Steps: 5}, SpaceOklch)

	mid := got[2]
	if math.Abs(mid.OKLCH.L-0.55) > 0.01 {
		t.Errorf("spline misses middle control point: L=%.4f, want ~0.55", mid.OKLCH.L)
	}
	if math.Abs(hueDelta(mid.OKLCH.H, 140)) > 1 {
		t.Errorf("spline misses middle control point: H=%.1f, want ~140", mid.OKLCH.H)
	}
}

func TestInterpolateHSL(t *testing.T) {
	a := FromHsl(350, 80, 50)
	b := FromHsl(10, 80, 50)

	got := Interpolate(InterpolationConfig{Points: []Colour{a, b}, Steps: 3}, SpaceHSL)

	// 350 to 10 crosses the 0 seam; midpoint is 0, not 180.
	mid := got[1].HSL.H
	if mid > 20 && mid < 340 {
		t.Errorf("midpoint hue %.1f, want near 0", mid)
	}
}
