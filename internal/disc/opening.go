package disc

import (
	"fmt"
	"math"
)

// OpeningAngle is the half-opening angle of the emitting cone, measured
// from the disc midplane. It is either uniform across the disc or varies
// per grid point; both variants feed the same solver path.
type OpeningAngle struct {
	uniform  float64
	perPoint []float64
}

// UniformOpening returns an opening angle shared by every point.
func UniformOpening(psi float64) OpeningAngle {
	return OpeningAngle{uniform: psi}
}

// PerPointOpening returns an opening angle that varies point by point.
// The slice must match the grid's point count; this is checked at model
// construction.
func PerPointOpening(psi []float64) OpeningAngle {
	return OpeningAngle{perPoint: psi}
}

// openingFromHeightLaw derives a per-point opening angle from an emitting
// surface height law evaluated at the given cylindrical radii.
func openingFromHeightLaw(law HeightLaw, radii []float64) OpeningAngle {
	psi := make([]float64, len(radii))
	for i, r := range radii {
		psi[i] = math.Atan2(law.Height(r), r)
	}
	return PerPointOpening(psi)
}

// At returns the opening angle for point i.
func (o OpeningAngle) At(i int) float64 {
	if o.perPoint != nil {
		return o.perPoint[i]
	}
	return o.uniform
}

// Varies reports whether the angle differs across points.
func (o OpeningAngle) Varies() bool { return o.perPoint != nil }

func (o OpeningAngle) validate(n int) error {
	if o.perPoint != nil && len(o.perPoint) != n {
		return fmt.Errorf("opening angle has %d entries, grid has %d points", len(o.perPoint), n)
	}
	return nil
}

// HeightLaw maps cylindrical radius to the height of the emitting surface
// above the midplane. When a model carries one, it overrides the heights
// derived from the cone intersection and fixes the opening angle per point.
type HeightLaw interface {
	Height(R float64) float64
}

// HeightFunc adapts a plain function to the HeightLaw interface.
type HeightFunc func(R float64) float64

func (f HeightFunc) Height(r float64) float64 { return f(r) }
