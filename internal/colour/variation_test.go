package colour

import (
	"math"
	"testing"
)

func TestVariationsCount(t *testing.T) {
	base := FromOklch(0.5, 0.1, 200)

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "default", count: 0, want: 10},
		{name: "explicit", count: 5, want: 5},
		{name: "below minimum", count: 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variations(base, VariationConfig{Type: Tones, Count: tt.count}, SpaceOklch)
			if len(got) != tt.want {
				t.Errorf("got %d colours, want %d", len(got), tt.want)
			}
		})
	}
}

func TestVariationMonochromatic(t *testing.T) {
	base := FromOklch(0.5, 0.1, 200)
	got := Variations(base, VariationConfig{Type: Monochromatic, Count: 5}, SpaceOklch)

	// Lightness walks 0.15 -> 0.90 regardless of the base lightness.
	if math.Abs(got[0].OKLCH.L-0.15) > 1e-9 {
		t.Errorf("first lightness = %.4f, want 0.15", got[0].OKLCH.L)
	}
	if math.Abs(got[4].OKLCH.L-0.90) > 1e-9 {
		t.Errorf("last lightness = %.4f, want 0.90", got[4].OKLCH.L)
	}
	for i := 1; i < len(got); i++ {
		if got[i].OKLCH.L <= got[i-1].OKLCH.L {
			t.Fatalf("lightness not increasing at index %d", i)
		}
	}
}

func TestVariationShadesFloor(t *testing.T) {
	base := FromOklch(0.3, 0.08, 30)
	got := Variations(base, VariationConfig{Type: Shades, Count: 4}, SpaceOklch)

	// 0.3*(1-0.85) = 0.045, which the floor lifts to 0.05.
	last := got[len(got)-1]
	if math.Abs(last.OKLCH.L-0.05) > 1e-9 {
		t.Errorf("final shade lightness = %.4f, want floor 0.05", last.OKLCH.L)
	}

	for i := 1; i < len(got); i++ {
		if got[i].OKLCH.L > got[i-1].OKLCH.L {
			t.Fatalf("shades lightness increased at index %d", i)
		}
	}
}

func TestVariationTints(t *testing.T) {
	base := FromOklch(0.4, 0.1, 140)
	got := Variations(base, VariationConfig{Type: Tints, Count: 3}, SpaceOklch)

	if got[0].OKLCH.L != base.OKLCH.L {
		t.Errorf("first tint lightness = %.4f, want base %.4f", got[0].OKLCH.L, base.OKLCH.L)
	}
	if math.Abs(got[2].OKLCH.L-0.97) > 1e-9 {
		t.Errorf("last tint lightness = %.4f, want 0.97", got[2].OKLCH.L)
	}
}

func TestVariationTones(t *testing.T) {
	base := FromOklch(0.6, 0.1, 80)
	got := Variations(base, VariationConfig{Type: Tones, Count: 5}, SpaceOklch)

	// Chroma decays toward 10% of the base; lightness holds.
	for i, c := range got {
		if c.OKLCH.L != base.OKLCH.L {
			t.Errorf("tone %d lightness = %.4f, want %.4f", i, c.OKLCH.L, base.OKLCH.L)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].OKLCH.C > got[i-1].OKLCH.C {
			t.Fatalf("tones chroma increased at index %d", i)
		}
	}
	wantLast := base.OKLCH.C * 0.1
	if math.Abs(got[4].OKLCH.C-wantLast) > 1e-9 {
		t.Errorf("final tone chroma = %.4f, want %.4f", got[4].OKLCH.C, wantLast)
	}
}

func TestVariationTemperature(t *testing.T) {
	base := FromOklch(0.6, 0.1, 0)
	got := Variations(base, VariationConfig{Type: Temperature, Count: 3}, SpaceOklch)

	wantHues := []float64{240, 135, 30}
	for i, want := range wantHues {
		if math.Abs(hueDelta(want, got[i].OKLCH.H)) > 1e-6 {
			t.Errorf("temperature %d hue = %.2f, want %.0f", i, got[i].OKLCH.H, want)
		}
	}
}

func TestVariationSaturationGradient(t *testing.T) {
	base := FromOklch(0.55, 0.2, 260)
	got := Variations(base, VariationConfig{Type: SaturationGradient, Count: 4}, SpaceOklch)

	if math.Abs(got[0].OKLCH.C-0.01) > 1e-9 {
		t.Errorf("first chroma = %.4f, want 0.01", got[0].OKLCH.C)
	}
	for i := 1; i < len(got); i++ {
		if got[i].OKLCH.C < got[i-1].OKLCH.C {
			t.Fatalf("saturation gradient chroma decreased at index %d", i)
		}
	}
}

func TestVariationLightnessGradientHSL(t *testing.T) {
	base := FromHsl(120, 70, 40)
	got := Variations(base, VariationConfig{Type: LightnessGradient, Count: 5}, SpaceHSL)

	if len(got) != 5 {
		t.Fatalf("got %d colours, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].HSL.L <= got[i-1].HSL.L {
			t.Fatalf("HSL lightness not increasing at index %d", i)
		}
	}
}
