package anneal

import (
	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/spin"
	"github.com/hupe1980/annealgo/util"
)

// Classical runs Metropolis simulated annealing on a single spin vector,
// cooling from TStart to TEnd over Steps full sweeps. It is used to
// pre-anneal the seed configuration before the quantum stage, and works
// as a standalone simulated annealer at any fixed or decreasing
// temperature.
type Classical struct {
	TStart float64
	TEnd   float64
	Steps  int
	Kind   ScheduleKind
}

// Anneal mutates spins in place through the full temperature schedule.
// One step is one sweep over all N sites in ascending order; flipping
// site i changes the energy s·J·s by dE = -2*s_i*h_i, accepted per the
// Metropolis criterion. Steps == 0 leaves the vector untouched.
//
// The annealer exclusively owns spins and rng for the duration of the
// call; the schedule length is the only stopping condition.
func (c Classical) Anneal(spins spin.Vector, neighbors lattice.NeighborIndex, rng *util.RNG) (Stats, error) {
	temps, err := Temperatures(c.Kind, c.TStart, c.TEnd, c.Steps)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, t := range temps {
		stats.Sweeps++
		for i := range spins {
			dE := -2 * float64(spins[i]) * localField(spins, neighbors[i])
			if metropolis(dE, t, rng) {
				spins.Flip(i)
				stats.Accepted++
			} else {
				stats.Rejected++
			}
		}
	}
	return stats, nil
}
