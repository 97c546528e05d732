package lattice

import "github.com/hupe1980/annealgo/util"

// Generate2D returns the coupling matrix of a randomly weighted toroidal
// 2D Ising lattice with linear dimension l, so N = l*l sites. The matrix
// carries the four diagonals of the torus: horizontal neighbors
// (offset 1), vertical neighbors (offset l), and the periodic wraps of
// each row (offset l-1) and column (offset N-l).
//
// Weights are drawn uniformly from [-2, 2), one draw per coupling, in a
// fixed order (diagonal by diagonal, rows ascending) so a seeded RNG
// yields a reproducible problem.
func Generate2D(l int, rng *util.RNG) (*CouplingMatrix, error) {
	if l < 2 {
		return nil, &ErrBadProblem{Reason: "linear dimension must be at least 2"}
	}
	n := l * l

	horizontal := make([]float64, n)
	for i := 0; i < n-1; i++ {
		if (i+1)%l == 0 {
			continue // row boundary, handled by the periodic wrap
		}
		horizontal[i] = rng.Uniform(-2, 2)
	}

	vertical := make([]float64, n)
	for i := 0; i < n-l; i++ {
		vertical[i] = rng.Uniform(-2, 2)
	}

	periodicHorizontal := make([]float64, n)
	for i := 0; i < n; i += l {
		periodicHorizontal[i] = rng.Uniform(-2, 2)
	}

	periodicVertical := make([]float64, n)
	for i := 0; i < l; i++ {
		periodicVertical[i] = rng.Uniform(-2, 2)
	}

	return NewCouplingMatrix(n,
		[]int{1, l, l - 1, n - l},
		[][]float64{horizontal, vertical, periodicHorizontal, periodicVertical})
}
