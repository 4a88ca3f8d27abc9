package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

// MaxAbs returns the largest absolute value in the matrix, the
// normalization the colormap wants.
func MaxAbs(matrix [][]float64) float64 {
	max := 0.0
	for _, row := range matrix {
		for _, v := range row {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}
	return max
}

// Heatmap renders the velocity matrix as colored terminal cells, two
// characters per node to keep the aspect ratio roughly square. Rows are
// printed north-up (last matrix row first). Maps wider than maxCols are
// downsampled by striding.
func Heatmap(matrix [][]float64, maxCols int) string {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return ""
	}
	if maxCols < 2 {
		maxCols = 2
	}

	stride := 1
	for len(matrix[0])/stride > maxCols {
		stride++
	}

	vmax := MaxAbs(matrix)

	var b strings.Builder
	for j := len(matrix) - 1; j >= 0; j -= stride {
		row := matrix[j]
		for i := 0; i < len(row); i += stride {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(DivergingHex(row[i], vmax)))
			b.WriteString(style.Render("██"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Legend prints the velocity range the colormap spans, in km/s.
func Legend(vmin, vmax float64) string {
	lo := Label.Render(fmt.Sprintf("%.2f km/s", vmin/1e3))
	hi := Label.Render(fmt.Sprintf("%.2f km/s", vmax/1e3))
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(colorReceding)).Render("█") +
		Subtle.Render("░░") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(colorApproaching)).Render("█")
	return fmt.Sprintf("%s %s %s  %s", lo, bar, hi, Subtle.Render("(positive approaches)"))
}
