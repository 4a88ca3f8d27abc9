// Package units holds the physical constants and unit conversions used
// across the disc models. Everything is SI internally; AU and solar masses
// are the natural input units at the CLI boundary.
package units

const (
	// G is the gravitational constant in m^3 kg^-1 s^-2.
	G = 6.67430e-11

	// MSun is the solar mass in kg.
	MSun = 1.98892e30

	// AU is the astronomical unit in m.
	AU = 1.495978707e11

	// Parsec in m.
	Parsec = 3.0856775814913673e16

	// KmS is one km/s in m/s.
	KmS = 1.0e3
)

// ToSI converts a length given in AU to meters.
func ToSI(au float64) float64 { return au * AU }

// ToAU converts a length given in meters to AU.
func ToAU(m float64) float64 { return m / AU }
