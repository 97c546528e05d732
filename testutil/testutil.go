package testutil

import (
	"testing"

	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/util"
)

// FerromagneticPair returns the 2-site system with a single bond of
// weight -1. Its ground states are (+1,+1) and (-1,-1) at energy -1,
// which makes convergence assertions trivial.
func FerromagneticPair(tb testing.TB) (*lattice.CouplingMatrix, lattice.NeighborIndex) {
	tb.Helper()
	m, err := lattice.NewCouplingMatrix(2, []int{1}, [][]float64{{-1, 0}})
	if err != nil {
		tb.Fatal(err)
	}
	return m, lattice.BuildNeighbors(m)
}

// Torus returns a seeded random l x l toroidal lattice and its neighbor
// index. The same (l, seed) pair always yields the same problem.
func Torus(tb testing.TB, l int, seed int64) (*lattice.CouplingMatrix, lattice.NeighborIndex) {
	tb.Helper()
	m, err := lattice.Generate2D(l, util.NewRNG(seed))
	if err != nil {
		tb.Fatal(err)
	}
	return m, lattice.BuildNeighbors(m)
}
