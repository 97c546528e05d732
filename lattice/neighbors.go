package lattice

// Neighbor pairs a coupled site with the weight of the coupling.
type Neighbor struct {
	Site   int
	Weight float64
}

// NeighborIndex maps a site id to the sites it is coupled with. Index i
// holds the (neighbor, weight) pairs of site i, in the order the matrix
// stores them. Symmetric by construction: (j, w) appears in row i exactly
// when (i, w) appears in row j.
//
// The index is built once per simulation and never mutated afterwards.
type NeighborIndex [][]Neighbor

// BuildNeighbors derives the adjacency structure from the coupling
// matrix in a single O(N+M) pass over the stored nonzeros, where M is
// the nonzero count. Each nonzero (i, j, w) contributes (j, w) to site
// i's row and (i, w) to site j's row.
func BuildNeighbors(m *CouplingMatrix) NeighborIndex {
	idx := make(NeighborIndex, m.Size())
	m.EachNonZero(func(i, j int, w float64) {
		idx[i] = append(idx[i], Neighbor{Site: j, Weight: w})
		idx[j] = append(idx[j], Neighbor{Site: i, Weight: w})
	})
	return idx
}
