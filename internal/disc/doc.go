// Package disc models the projected line-of-sight velocity field of a
// flared protoplanetary disc.
//
// The model follows the Rosenfeld et al. (2013) toy picture: the emitting
// layer is a double cone tilted by the disc inclination, and every
// sky-plane point is deprojected onto its near and far surface by solving
// a per-point quadratic for the cone intersection. An orbital velocity law
// is then evaluated at the resulting disc-frame coordinates and projected
// onto the line of sight:
//
//   - "keplerian": midplane Keplerian rotation, v = sqrt(GM/R)
//   - "keplerian_vertical": Keplerian rotation about the 3D spherical
//     radius of the emitting layer
//
// Everything is computed eagerly by [New]; the returned [Model] is a pure
// function of its grid and parameters and is never mutated afterwards.
package disc
