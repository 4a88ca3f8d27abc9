package disc

import "math"

// rotateSkyPlane rotates sky coordinates counter-clockwise by ang using a
// standard 2x2 rotation matrix. The model applies it with ang = -PA to
// undo the disc's position-angle offset before solving the cone geometry.
func rotateSkyPlane(x, y []float64, ang float64) ([]float64, []float64) {
	sinA, cosA := math.Sincos(ang)
	xr := make([]float64, len(x))
	yr := make([]float64, len(y))
	for i := range x {
		xr[i] = cosA*x[i] - sinA*y[i]
		yr[i] = sinA*x[i] + cosA*y[i]
	}
	return xr, yr
}
