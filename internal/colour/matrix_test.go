package colour

import (
	"math"
	"testing"
)

func TestStepToLightness(t *testing.T) {
	// Monotonically decreasing across the default scale.
	prev := math.Inf(1)
	for _, step := range DefaultSteps {
		l := StepToLightness(step)
		if l >= prev {
			t.Fatalf("StepToLightness(%d) = %.4f, not decreasing", step, l)
		}
		prev = l
	}

	if got := StepToLightness(500); math.Abs(got-0.535) > 1e-9 {
		t.Errorf("StepToLightness(500) = %.4f, want 0.535", got)
	}
}

func TestTonalMatrixDefaults(t *testing.T) {
	base := FromOklch(0.58, 0.12, 275)
	m := TonalMatrix(base, MatrixConfig{}, SpaceOklch)

	if len(m.Hues) != 1 {
		t.Fatalf("default matrix has %d hue rows, want 1", len(m.Hues))
	}
	if len(m.Steps) != len(DefaultSteps) {
		t.Fatalf("default matrix has %d steps, want %d", len(m.Steps), len(DefaultSteps))
	}
	if len(m.Grid) != 1 || len(m.Grid[0]) != len(DefaultSteps) {
		t.Fatalf("grid shape mismatch: %dx%d", len(m.Grid), len(m.Grid[0]))
	}

	// Row lightness follows the step scale exactly.
	for i, step := range DefaultSteps {
		want := StepToLightness(step)
		if m.Grid[0][i].OKLCH.L != want {
			t.Errorf("step %d lightness = %.4f, want %.4f", step, m.Grid[0][i].OKLCH.L, want)
		}
	}
}

func TestTonalMatrixHuePresets(t *testing.T) {
	base := FromOklch(0.6, 0.1, 100)

	tests := []struct {
		preset MatrixHues
		rows   int
	}{
		{preset: HuesBase, rows: 1},
		{preset: HuesTriadic, rows: 3},
		{preset: HuesTetradic, rows: 4},
		{preset: HuesEven, rows: 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			m := TonalMatrix(base, MatrixConfig{Hues: tt.preset}, SpaceOklch)
			if len(m.Grid) != tt.rows {
				t.Errorf("got %d rows, want %d", len(m.Grid), tt.rows)
			}
		})
	}
}

func TestTonalMatrixChromaBounds(t *testing.T) {
	base := FromOklch(0.6, 0.1, 30)
	m := TonalMatrix(base, MatrixConfig{}, SpaceOklch)

	// Attenuated chroma stays within 30%..120% of the base chroma
	// before any gamut clamping, which can only reduce it further.
	for i, c := range m.Grid[0] {
		if c.OKLCH.C > base.OKLCH.C*1.2+1e-9 {
			t.Errorf("step %d chroma %.4f above 120%% ceiling", m.Steps[i], c.OKLCH.C)
		}
	}
}

func TestTonalMatrixFlatten(t *testing.T) {
	base := FromOklch(0.6, 0.08, 200)
	m := TonalMatrix(base, MatrixConfig{Hues: HuesTriadic, Steps: []int{100, 500, 900}}, SpaceOklch)

	flat := m.Flatten()
	if len(flat) != 9 {
		t.Fatalf("flattened length = %d, want 9", len(flat))
	}
	// Row-major: flat[3] is the first step of the second hue row.
	if flat[3].Hex != m.Grid[1][0].Hex {
		t.Error("flatten order is not row-major")
	}
}

func TestTonalMatrixHSL(t *testing.T) {
	base := FromHsl(260, 70, 50)
	m := TonalMatrix(base, MatrixConfig{Steps: []int{50, 500, 950, 2000}}, SpaceHSL)

	// HSL lightness is clamped into [5,98] percent.
	for i, c := range m.Grid[0] {
		if c.HSL.L < 5-0.6 || c.HSL.L > 98+0.6 {
			t.Errorf("step %d HSL lightness %.2f outside [5,98]", m.Steps[i], c.HSL.L)
		}
	}

	// Step 2000 clamps to the same lightness floor as step 950.
	last := m.Grid[0][3]
	if math.Abs(last.HSL.L-5) > 0.6 {
		t.Errorf("extreme step lightness = %.2f, want ~5", last.HSL.L)
	}
}
