package spin

// Coupling is the read-only view of a coupling matrix the energy
// evaluator needs. *lattice.CouplingMatrix satisfies it.
type Coupling interface {
	// Size returns the number of lattice sites.
	Size() int
	// EachNonZero visits every stored coupling (i, j, w) once.
	EachNonZero(fn func(i, j int, w float64))
}

// ClassicalEnergy computes the classical Ising energy of v under J:
// the quadratic form sum over stored couplings of w * v[i] * v[j].
//
// The sign convention is whatever J embeds; a ferromagnetic bond is a
// negative weight, so two aligned spins across it contribute negative
// energy. Pure function; used for diagnostics and the final replica
// scan, not on the sweep hot path.
func ClassicalEnergy(v Vector, j Coupling) float64 {
	e := 0.0
	j.EachNonZero(func(a, b int, w float64) {
		e += w * float64(v[a]) * float64(v[b])
	})
	return e
}
