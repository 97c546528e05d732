package anneal

import (
	"math"

	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/spin"
	"github.com/hupe1980/annealgo/util"
)

// Quantum runs the path-integral quantum Monte Carlo stage. The
// transverse-field Ising Hamiltonian is decomposed via Suzuki-Trotter
// into the P classical replicas of the ensemble, arranged on a ring.
// Adjacent replicas are coupled ferromagnetically with strength
//
//	Jperp(Γ) = -(P*T/2) * ln(tanh(Γ / (P*T)))
//
// which grows without bound as Γ decreases, pulling the replicas toward
// agreement as the schedule approaches the classical limit. T is held
// constant for the whole stage; only Γ anneals.
type Quantum struct {
	GammaStart float64
	GammaEnd   float64
	Steps      int
	T          float64
}

// Anneal mutates the replica ensemble in place through the full field
// schedule. Each of the Steps outer iterations lowers Γ by an equal
// decrement, reaching GammaEnd exactly on the final step, and performs
// one sweep of N*P Metropolis trials: replicas in ascending order, sites
// in ascending order within each replica. The local field of (i, p)
// combines the intra-replica neighbor couplings with the Jperp coupling
// to replicas (p-1+P)%P and (p+1)%P; with P == 1 the ring has no
// distinct neighbors and the inter-replica term is skipped, degenerating
// to a classical Metropolis sweep at fixed T.
//
// There is no convergence check and the replicas are not required to
// agree when the schedule ends. Given the same seed and parameters the
// final ensemble is bit-identical across runs.
func (q Quantum) Anneal(reps *spin.Replicas, neighbors lattice.NeighborIndex, rng *util.RNG) (Stats, error) {
	if q.Steps < 1 {
		return Stats{}, &ErrBadSchedule{Reason: "quantum stage requires at least one step"}
	}
	if q.T <= 0 {
		return Stats{}, &ErrBadSchedule{Reason: "temperature must be positive"}
	}
	if q.GammaEnd <= 0 {
		return Stats{}, &ErrBadSchedule{Reason: "transverse field must stay positive"}
	}
	if q.GammaStart < q.GammaEnd {
		return Stats{}, &ErrBadSchedule{Reason: "transverse field must not increase"}
	}

	n := reps.Sites()
	p := reps.Slices()
	dGamma := (q.GammaStart - q.GammaEnd) / float64(q.Steps)

	var stats Stats
	for step := 1; step <= q.Steps; step++ {
		gamma := q.GammaStart - float64(step)*dGamma
		if step == q.Steps {
			gamma = q.GammaEnd
		}

		jPerp := 0.0
		if p > 1 {
			pt := float64(p) * q.T
			jPerp = -0.5 * pt * math.Log(math.Tanh(gamma/pt))
		}

		stats.Sweeps++
		for k := 0; k < p; k++ {
			col := reps.Replica(k)
			var left, right spin.Vector
			if p > 1 {
				left = reps.Replica((k - 1 + p) % p)
				right = reps.Replica((k + 1) % p)
			}

			for i := 0; i < n; i++ {
				h := localField(col, neighbors[i])
				if p > 1 {
					// Ferromagnetic inter-replica bond: weight -Jperp
					// in the s·J·s convention.
					h -= jPerp * float64(left[i]+right[i])
				}
				dE := -2 * float64(col[i]) * h
				if metropolis(dE, q.T, rng) {
					col.Flip(i)
					stats.Accepted++
				} else {
					stats.Rejected++
				}
			}
		}
	}
	return stats, nil
}
