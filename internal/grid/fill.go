package grid

import (
	"fmt"
	"math"
	"math/rand"
)

// Filler injects random dummy points into a grid. Dummy points carry no
// physical fields; they pad the empty space between real cells and the
// border of a radiative-transfer domain.
type Filler struct {
	grid *Grid
	rng  *rand.Rand
}

// NewFiller wraps a grid for padding. The seed makes fills reproducible.
func NewFiller(g *Grid, seed int64) *Filler {
	return &Filler{grid: g, rng: rand.New(rand.NewSource(seed))}
}

// FillResult reports what a fill did.
type FillResult struct {
	RRand        []float64 // radial coordinate of each injected point
	RMin         float64
	RMax         float64
	CompFraction float64 // mass fraction actually enclosed by RMin (ByMass only)
	NDummy       int
}

// Spherical appends nDummy uniformly-distributed random points inside the
// spherical shell [rMin, rMax], mutating the grid's XYZ and NPoints in
// place and clearing Nodes (the grid is no longer a regular mesh).
//
// rMax <= 0 defaults to the farthest point in the grid; nDummy <= 0
// defaults to NPoints/100.
func (f *Filler) Spherical(rMin, rMax float64, nDummy int) (*FillResult, error) {
	if rMax <= 0 {
		rMax = f.grid.MaxRadius()
	}
	if rMin < 0 || rMin > rMax {
		return nil, fmt.Errorf("invalid shell [%f, %f]", rMin, rMax)
	}
	if nDummy <= 0 {
		nDummy = f.grid.NPoints / 100
		if nDummy < 1 {
			nDummy = 1
		}
	}

	rRand := make([]float64, nDummy)
	for i := 0; i < nDummy; i++ {
		r := rMin + f.rng.Float64()*(rMax-rMin)
		theta := f.rng.Float64() * math.Pi
		phi := f.rng.Float64() * 2 * math.Pi

		sinT, cosT := math.Sincos(theta)
		sinP, cosP := math.Sincos(phi)
		f.grid.XYZ[0] = append(f.grid.XYZ[0], r*sinT*cosP)
		f.grid.XYZ[1] = append(f.grid.XYZ[1], r*sinT*sinP)
		f.grid.XYZ[2] = append(f.grid.XYZ[2], r*cosT)
		rRand[i] = r
	}

	f.grid.NPoints += nDummy
	f.grid.Nodes = [2]int{}

	return &FillResult{RRand: rRand, RMin: rMin, RMax: rMax, NDummy: nDummy}, nil
}

// ByMass pads the shell outside the radius enclosing the given mass
// fraction. It scans rSteps radii from 0 to rMax and records the first one
// whose enclosed mass exceeds fraction of the total; that radius becomes
// the inner edge of the Spherical fill.
//
// massField holds the mass of each cell, aligned with the grid's points.
func (f *Filler) ByMass(massField []float64, fraction, rMax float64, nDummy, rSteps int) (*FillResult, error) {
	if len(massField) != f.grid.NPoints {
		return nil, fmt.Errorf("mass field has %d entries, grid has %d points", len(massField), f.grid.NPoints)
	}
	if fraction <= 0 || fraction >= 1 {
		return nil, fmt.Errorf("mass fraction must be in (0, 1), got %f", fraction)
	}
	if rMax <= 0 {
		rMax = f.grid.MaxRadius()
	}
	if rSteps < 2 {
		rSteps = 100
	}

	radii := f.grid.SphericalRadii()
	total := 0.0
	for _, m := range massField {
		total += m
	}
	minMass := fraction * total

	rMin := -1.0
	encMass := 0.0
	for s := 0; s < rSteps; s++ {
		r := float64(s) / float64(rSteps-1) * rMax
		encMass = 0
		for i, ri := range radii {
			if ri < r {
				encMass += massField[i]
			}
		}
		if encMass > minMass {
			rMin = r
			break
		}
	}
	if rMin < 0 {
		return nil, fmt.Errorf("mass fraction %.3f not enclosed within r_max=%g", fraction, rMax)
	}

	res, err := f.Spherical(rMin, rMax, nDummy)
	if err != nil {
		return nil, err
	}
	res.CompFraction = encMass / total
	return res, nil
}
