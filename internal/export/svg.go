// Package export writes velocity maps and profiles to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/discflow/internal/render"
)

// MapToSVG renders a rasterized velocity field as one colored cell per
// node, north-up, using the same diverging colormap as the terminal view.
// cell is the pixel size of one node.
func MapToSVG(matrix [][]float64, cell int) string {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return ""
	}
	if cell < 1 {
		cell = 4
	}

	nrows := len(matrix)
	ncols := len(matrix[0])
	width := ncols * cell
	height := nrows * cell
	vmax := render.MaxAbs(matrix)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for j := 0; j < nrows; j++ {
		// matrix row 0 is the southern edge; SVG y grows downward
		y := (nrows - 1 - j) * cell
		for i := 0; i < ncols; i++ {
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, i*cell, y, cell, cell, render.DivergingHex(matrix[j][i], vmax)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ProfileToSVG plots a 1D velocity cut as a polyline.
func ProfileToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.1
	maxV += rangeV * 0.1
	rangeV = maxV - minV

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-minV)/rangeV*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
