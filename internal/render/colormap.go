// Package render draws velocity maps and summaries in the terminal.
package render

import (
	"fmt"
	"math"
	"strconv"
)

// Diverging velocity colormap endpoints. Approaching gas (positive v) is
// blue-shifted on screen, receding gas red-shifted, zero is near-black.
const (
	colorApproaching = "#44aaff"
	colorZero        = "#14141e"
	colorReceding    = "#ff4444"
)

func parseHex(s string) (r, g, b int) {
	if len(s) == 7 && s[0] == '#' {
		rv, _ := strconv.ParseInt(s[1:3], 16, 32)
		gv, _ := strconv.ParseInt(s[3:5], 16, 32)
		bv, _ := strconv.ParseInt(s[5:7], 16, 32)
		return int(rv), int(gv), int(bv)
	}
	return 0, 0, 0
}

func hexColor(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func lerpHex(from, to string, t float64) string {
	fr, fg, fb := parseHex(from)
	tr, tg, tb := parseHex(to)
	r := int(float64(fr) + t*float64(tr-fr))
	g := int(float64(fg) + t*float64(tg-fg))
	b := int(float64(fb) + t*float64(tb-fb))
	return hexColor(r, g, b)
}

// DivergingHex maps a velocity to a hex color, normalizing by vmax (the
// largest absolute value in the field). Values beyond vmax clamp to the
// endpoints.
func DivergingHex(v, vmax float64) string {
	if vmax <= 0 || math.IsNaN(v) {
		return colorZero
	}
	t := v / vmax
	if t > 1 {
		t = 1
	}
	if t < -1 {
		t = -1
	}
	if t >= 0 {
		return lerpHex(colorZero, colorApproaching, t)
	}
	return lerpHex(colorZero, colorReceding, -t)
}
