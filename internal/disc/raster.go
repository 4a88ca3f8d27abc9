package disc

import "fmt"

// Rasterize reshapes a flat per-point sequence into an (nrows, ncols)
// matrix, filled row-major: flat index k lands at row k/ncols, column
// k%ncols. The sequence length must match the node layout exactly;
// truncated or partial fills are never produced.
func Rasterize(flat []float64, ncols, nrows int) ([][]float64, error) {
	if ncols < 1 || nrows < 1 {
		return nil, fmt.Errorf("invalid node layout %dx%d", ncols, nrows)
	}
	if len(flat) != ncols*nrows {
		return nil, fmt.Errorf("cannot shape %d values into %dx%d nodes", len(flat), ncols, nrows)
	}

	matrix := make([][]float64, nrows)
	for j := 0; j < nrows; j++ {
		row := make([]float64, ncols)
		copy(row, flat[j*ncols:(j+1)*ncols])
		matrix[j] = row
	}
	return matrix, nil
}
