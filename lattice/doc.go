// Package lattice models the coupling structure of a 2D Ising problem.
//
// A problem is a symmetric sparse coupling matrix over N lattice sites,
// stored in diagonal (DIA) format: a set of offset diagonals, each
// carrying per-row weights. The square-lattice case uses four diagonals
// (horizontal, vertical and their periodic-wrap counterparts) over a
// toroidal grid of size sqrt(N) x sqrt(N).
//
// The matrix is read-only for the whole simulation. The per-site
// adjacency view the annealers consume is derived once via
// BuildNeighbors and never mutated afterwards.
package lattice
