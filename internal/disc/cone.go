package disc

import "math"

// coneSolver locates the intersections of each line of sight with the
// double cone and converts them to disc-frame coordinates.
type coneSolver struct {
	incl      float64
	opening   OpeningAngle
	heightLaw HeightLaw

	sinI, cosI, tanI, cos2I float64
}

func newConeSolver(incl float64, opening OpeningAngle, law HeightLaw) *coneSolver {
	sinI, cosI := math.Sincos(incl)
	return &coneSolver{
		incl:      incl,
		opening:   opening,
		heightLaw: law,
		sinI:      sinI,
		cosI:      cosI,
		tanI:      sinI / cosI,
		cos2I:     math.Cos(2 * incl),
	}
}

func newSurface(n int) Surface {
	return Surface{
		X: make([]float64, n),
		Y: make([]float64, n),
		Z: make([]float64, n),
		R: make([]float64, n),
	}
}

// solve deprojects every rotated sky point onto the near and far cone
// surfaces. The near side is the larger quadratic root, the far side the
// smaller; both are derived by the same routine so the two sides cannot
// drift apart.
func (cs *coneSolver) solve(x, y []float64) (map[Side]Surface, error) {
	n := len(x)
	near := newSurface(n)
	far := newSurface(n)

	err := forEachPoint(n, func(i int) error {
		t0, t1, ok := cs.roots(x[i], y[i], cs.opening.At(i))
		if !ok {
			return GeometryError{Index: i, X: x[i], Y: y[i]}
		}
		cs.deproject(&near, i, x[i], y[i], t1)
		cs.deproject(&far, i, x[i], y[i], t0)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return map[Side]Surface{SideNear: near, SideFar: far}, nil
}

// roots solves A t^2 + B t + C = 0 for the cone intersection parameter and
// returns the roots in ascending order. ok is false when the leading
// coefficient vanishes or the roots are complex.
func (cs *coneSolver) roots(x, y, psi float64) (t0, t1 float64, ok bool) {
	sinPsi := math.Sin(psi)
	fac := -2 * sinPsi * sinPsi

	a := cs.cos2I + math.Cos(2*psi)
	b := fac * 2 * cs.tanI * y
	yc := y / cs.cosI
	c := fac * (x*x + yc*yc)

	if a == 0 {
		return 0, 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}

	sq := math.Sqrt(disc)
	t0 = (-b - sq) / (2 * a)
	t1 = (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}

// deproject writes the disc-frame coordinates of point i for the surface
// selected by root t. A height law, when present, overrides the height
// derived from the cone intersection; t then only enters through y.
func (cs *coneSolver) deproject(s *Surface, i int, x, y, t float64) {
	xt := x
	yt := y/cs.cosI + t*cs.sinI
	rt := math.Hypot(xt, yt)

	s.X[i] = xt
	s.Y[i] = yt
	s.R[i] = rt
	if cs.heightLaw != nil {
		s.Z[i] = cs.heightLaw.Height(rt)
	} else {
		s.Z[i] = t * cs.cosI
	}
}
