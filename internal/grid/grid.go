// Package grid provides the sky-plane grids the disc models are evaluated
// on, plus tools to pad a grid with dummy points for radiative-transfer
// domains.
package grid

import (
	"fmt"
	"math"
)

// Grid is an ordered collection of points. XYZ holds one coordinate
// sequence per axis, each of length NPoints; Nodes records the column and
// row counts for regular meshes (zero for irregular or padded grids).
type Grid struct {
	NPoints int
	XYZ     [3][]float64
	Nodes   [2]int // columns, rows
}

// NewCartesian builds a regular sky-plane mesh spanning [-halfSize,
// halfSize] on both axes, with nx columns and ny rows. Points are ordered
// row by row with the column index varying fastest, which is the order the
// rasterizer consumes.
func NewCartesian(halfSize float64, nx, ny int) (*Grid, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("grid needs at least 2x2 nodes, got %dx%d", nx, ny)
	}
	if halfSize <= 0 {
		return nil, fmt.Errorf("half size must be positive, got %f", halfSize)
	}

	n := nx * ny
	g := &Grid{
		NPoints: n,
		Nodes:   [2]int{nx, ny},
	}
	for ax := range g.XYZ {
		g.XYZ[ax] = make([]float64, 0, n)
	}

	dx := 2 * halfSize / float64(nx-1)
	dy := 2 * halfSize / float64(ny-1)
	for j := 0; j < ny; j++ {
		y := -halfSize + float64(j)*dy
		for i := 0; i < nx; i++ {
			x := -halfSize + float64(i)*dx
			g.XYZ[0] = append(g.XYZ[0], x)
			g.XYZ[1] = append(g.XYZ[1], y)
			g.XYZ[2] = append(g.XYZ[2], 0)
		}
	}
	return g, nil
}

// Radii returns the cylindrical radius hypot(x, y) of every point.
func (g *Grid) Radii() []float64 {
	r := make([]float64, g.NPoints)
	for i := 0; i < g.NPoints; i++ {
		r[i] = math.Hypot(g.XYZ[0][i], g.XYZ[1][i])
	}
	return r
}

// SphericalRadii returns the 3D radius of every point.
func (g *Grid) SphericalRadii() []float64 {
	r := make([]float64, g.NPoints)
	for i := 0; i < g.NPoints; i++ {
		x, y, z := g.XYZ[0][i], g.XYZ[1][i], g.XYZ[2][i]
		r[i] = math.Sqrt(x*x + y*y + z*z)
	}
	return r
}

// MaxRadius returns the 3D radius of the farthest point in the grid.
func (g *Grid) MaxRadius() float64 {
	max := 0.0
	for _, r := range g.SphericalRadii() {
		if r > max {
			max = r
		}
	}
	return max
}
