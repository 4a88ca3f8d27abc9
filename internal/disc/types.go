package disc

import (
	"fmt"
	"math"
)

// Side selects one of the two cone surfaces a line of sight pierces.
type Side string

const (
	SideNear Side = "near"
	SideFar  Side = "far"
)

// Sides lists both surfaces in a fixed order.
var Sides = []Side{SideNear, SideFar}

// Surface holds the disc-frame coordinates of every grid point deprojected
// onto one side of the emitting cone. R is the cylindrical radius
// hypot(X, Y) and is never negative.
type Surface struct {
	X, Y, Z, R []float64
}

// Field is a flat per-point sequence of line-of-sight velocities.
// Positive values approach the observer.
type Field []float64

// IsValid reports whether the field is free of NaN and Inf entries.
func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounds returns the minimum and maximum value in the field.
func (f Field) Bounds() (min, max float64) {
	if len(f) == 0 {
		return 0, 0
	}
	min, max = f[0], f[0]
	for _, v := range f[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// GeometryError reports a sky point whose line of sight misses the
// emitting cone (degenerate or complex quadratic roots).
type GeometryError struct {
	Index int
	X, Y  float64
}

func (e GeometryError) Error() string {
	return fmt.Sprintf("point %d (x=%.4g, y=%.4g): line of sight does not intersect the emitting cone", e.Index, e.X, e.Y)
}
