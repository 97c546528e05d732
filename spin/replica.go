package spin

// Replicas holds the P Trotter replicas of an N-site spin system used by
// path-integral quantum Monte Carlo. Replicas sit on a ring: replica p
// couples to replicas (p-1+P)%P and (p+1)%P in the quantum stage.
//
// Storage is replica-major: each replica is a contiguous Vector, which
// keeps the per-replica sweep cache friendly.
type Replicas struct {
	sites  int
	slices int
	data   []int8
}

// Tile creates P replicas, each an independent copy of seed. The seed
// vector is copied, never aliased; mutating it afterwards does not
// affect the ensemble.
func Tile(seed Vector, p int) *Replicas {
	r := &Replicas{
		sites:  len(seed),
		slices: p,
		data:   make([]int8, len(seed)*p),
	}
	for k := 0; k < p; k++ {
		copy(r.data[k*r.sites:(k+1)*r.sites], seed)
	}
	return r
}

// Sites returns N, the number of lattice sites per replica.
func (r *Replicas) Sites() int {
	return r.sites
}

// Slices returns P, the number of Trotter replicas.
func (r *Replicas) Slices() int {
	return r.slices
}

// Replica returns replica p's configuration as a view into the ensemble.
// Mutations through the returned Vector are visible in the ensemble;
// callers that need a stable copy must Clone it.
func (r *Replicas) Replica(p int) Vector {
	return Vector(r.data[p*r.sites : (p+1)*r.sites])
}
