package disc

import (
	"fmt"
	"math"

	"github.com/san-kum/discflow/internal/grid"
)

// Params configures a disc velocity field model. Angles are radians,
// Mstar is kg, lengths follow the grid's units.
type Params struct {
	Mstar float64      // stellar mass
	Incl  float64      // inclination of the disc midplane; pi/2 is edge-on
	Psi   OpeningAngle // half-opening angle of the emitting cone
	PA    float64      // position angle of the projected major axis
	Law   string       // velocity law name; defaults to LawKeplerian
	Get2D bool         // additionally rasterize the fields onto the grid nodes

	// HeightLaw optionally pins the emitting surface height to an explicit
	// law z(R). It overrides both the cone-derived heights and Psi.
	HeightLaw HeightLaw
}

// Model is the fully evaluated velocity field: disc-frame surfaces and
// projected velocities for both cone sides. All fields are computed by
// New and never mutated afterwards.
type Model struct {
	params   Params
	opening  OpeningAngle
	npoints  int
	surfaces map[Side]Surface
	velocity map[Side]Field
	maps     map[Side][][]float64
}

// New deprojects the grid onto the double cone and evaluates the selected
// velocity law, eagerly. Every validation failure (law name, opening angle
// shape, geometry, node layout) surfaces here, before any result exists.
func New(g *grid.Grid, p Params) (*Model, error) {
	if p.Law == "" {
		p.Law = LawKeplerian
	}
	law, ok := velocityLaws[p.Law]
	if !ok {
		return nil, fmt.Errorf("unknown velocity law %q (available: %v)", p.Law, LawNames())
	}
	if p.Mstar <= 0 {
		return nil, fmt.Errorf("stellar mass must be positive, got %g", p.Mstar)
	}
	if math.Abs(math.Cos(p.Incl)) < 1e-12 {
		return nil, fmt.Errorf("inclination %g is exactly edge-on; the sky plane cannot be deprojected", p.Incl)
	}

	opening := p.Psi
	if p.HeightLaw != nil {
		opening = openingFromHeightLaw(p.HeightLaw, g.Radii())
	}
	if err := opening.validate(g.NPoints); err != nil {
		return nil, err
	}

	x, y := g.XYZ[0], g.XYZ[1]
	if p.PA != 0 {
		x, y = rotateSkyPlane(x, y, -p.PA)
	}

	solver := newConeSolver(p.Incl, opening, p.HeightLaw)
	surfaces, err := solver.solve(x, y)
	if err != nil {
		return nil, err
	}

	m := &Model{
		params:   p,
		opening:  opening,
		npoints:  g.NPoints,
		surfaces: surfaces,
		velocity: make(map[Side]Field, len(Sides)),
	}
	for _, side := range Sides {
		m.velocity[side] = law(p.Mstar, p.Incl, surfaces[side])
	}

	if p.Get2D {
		m.maps = make(map[Side][][]float64, len(Sides))
		for _, side := range Sides {
			matrix, err := Rasterize(m.velocity[side], g.Nodes[0], g.Nodes[1])
			if err != nil {
				return nil, err
			}
			m.maps[side] = matrix
		}
	}

	return m, nil
}

// NPoints returns the number of grid points the model was evaluated on.
func (m *Model) NPoints() int { return m.npoints }

// Opening returns the opening angle actually used, after any height-law
// derivation.
func (m *Model) Opening() OpeningAngle { return m.opening }

// Surface returns the disc-frame coordinates of one cone side.
func (m *Model) Surface(side Side) Surface { return m.surfaces[side] }

// Velocity returns the flat line-of-sight velocity field of one side.
func (m *Model) Velocity(side Side) Field { return m.velocity[side] }

// VelocityMap returns the rasterized velocity field of one side, or nil
// when the model was built without Get2D.
func (m *Model) VelocityMap(side Side) [][]float64 {
	if m.maps == nil {
		return nil
	}
	return m.maps[side]
}
