package disc

import (
	"math"
	"sort"

	"github.com/san-kum/discflow/internal/units"
)

// LawKeplerian and LawKeplerianVertical name the selectable orbital
// velocity laws.
const (
	LawKeplerian         = "keplerian"
	LawKeplerianVertical = "keplerian_vertical"
)

type velocityLaw func(mstar, incl float64, s Surface) Field

var velocityLaws = map[string]velocityLaw{
	LawKeplerian:         keplerianMidplane,
	LawKeplerianVertical: keplerianVertical,
}

// LawNames lists the recognized velocity law names.
func LawNames() []string {
	names := make([]string, 0, len(velocityLaws))
	for name := range velocityLaws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// keplerianMidplane projects midplane Keplerian rotation, v = sqrt(GM/R),
// onto the line of sight. The geometric line-of-sight axis points away
// from the observer, so the sign is flipped: approaching gas reports a
// positive velocity.
func keplerianMidplane(mstar, incl float64, s Surface) Field {
	v := make(Field, len(s.R))
	sinI := math.Sin(incl)
	for i := range v {
		phi := math.Atan2(s.Y[i], s.X[i])
		ang := sinI * math.Cos(phi)
		v[i] = -ang * math.Sqrt(units.G*mstar/s.R[i])
	}
	return v
}

// keplerianVertical evaluates the Keplerian law at the 3D spherical radius
// of the emitting layer, v = sqrt(GM/r^3)*R, with the same sign convention
// as keplerianMidplane.
func keplerianVertical(mstar, incl float64, s Surface) Field {
	v := make(Field, len(s.R))
	sinI := math.Sin(incl)
	for i := range v {
		r := math.Hypot(s.R[i], s.Z[i])
		phi := math.Atan2(s.Y[i], s.X[i])
		ang := sinI * math.Cos(phi)
		v[i] = -ang * math.Sqrt(units.G*mstar/(r*r*r)) * s.R[i]
	}
	return v
}
