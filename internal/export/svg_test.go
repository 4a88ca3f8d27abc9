package export

import (
	"strings"
	"testing"
)

func TestMapToSVG(t *testing.T) {
	m := [][]float64{{1, -1}, {0.5, -0.5}}
	svg := MapToSVG(m, 8)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}
	// background + one cell per node
	if got := strings.Count(svg, "<rect"); got != 5 {
		t.Errorf("expected 5 rects, got %d", got)
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Error("canvas should be 2x2 cells of 8px")
	}

	if MapToSVG(nil, 8) != "" {
		t.Error("empty matrix should produce empty output")
	}
}

func TestProfileToSVG(t *testing.T) {
	svg := ProfileToSVG([]float64{-1, 0, 1, 0.5}, 200, 100, "#00ff00")

	if !strings.Contains(svg, `<path fill="none"`) {
		t.Error("missing polyline path")
	}
	if !strings.Contains(svg, "#00ff00") {
		t.Error("stroke color not applied")
	}

	if ProfileToSVG([]float64{1}, 200, 100, "#fff") != "" {
		t.Error("single point has no profile")
	}
}

func TestProfileToSVG_FlatLine(t *testing.T) {
	svg := ProfileToSVG([]float64{2, 2, 2}, 100, 50, "#fff")
	if svg == "" {
		t.Fatal("flat profiles should still render")
	}
	if strings.Contains(svg, "NaN") {
		t.Error("flat profile produced NaN coordinates")
	}
}
