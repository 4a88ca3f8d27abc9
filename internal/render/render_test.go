package render

import (
	"strings"
	"testing"
)

func TestDivergingHex(t *testing.T) {
	tests := []struct {
		name     string
		v, vmax  float64
		expected string
	}{
		{"zero", 0, 1, colorZero},
		{"full positive", 1, 1, colorApproaching},
		{"full negative", -1, 1, colorReceding},
		{"clamped positive", 5, 1, colorApproaching},
		{"clamped negative", -5, 1, colorReceding},
		{"degenerate range", 1, 0, colorZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DivergingHex(tt.v, tt.vmax); got != tt.expected {
				t.Errorf("DivergingHex(%v, %v) = %s, want %s", tt.v, tt.vmax, got, tt.expected)
			}
		})
	}
}

func TestDivergingHex_Midpoint(t *testing.T) {
	got := DivergingHex(0.5, 1)
	if got == colorZero || got == colorApproaching {
		t.Errorf("midpoint color %s should sit between the endpoints", got)
	}
	if !strings.HasPrefix(got, "#") || len(got) != 7 {
		t.Errorf("not a hex color: %s", got)
	}
}

func TestMaxAbs(t *testing.T) {
	m := [][]float64{{1, -3}, {2, 0.5}}
	if got := MaxAbs(m); got != 3 {
		t.Errorf("MaxAbs = %v, want 3", got)
	}
}

func TestHeatmap(t *testing.T) {
	m := [][]float64{{1, -1}, {0.5, -0.5}}
	out := Heatmap(m, 80)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}

	if Heatmap(nil, 80) != "" {
		t.Error("empty matrix should render to empty string")
	}
}

func TestHeatmap_Downsamples(t *testing.T) {
	wide := make([][]float64, 4)
	for j := range wide {
		wide[j] = make([]float64, 100)
	}
	out := Heatmap(wide, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for _, line := range lines {
		// 2 chars per rendered cell, possibly wrapped in color codes
		if n := strings.Count(line, "█") / 2; n > 10 {
			t.Fatalf("row has %d cells, want <= 10", n)
		}
	}
}
