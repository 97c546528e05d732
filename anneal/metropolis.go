package anneal

import (
	"math"

	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/spin"
	"github.com/hupe1980/annealgo/util"
)

// Stats reports Metropolis totals for one annealing stage.
type Stats struct {
	Sweeps   int
	Accepted int64
	Rejected int64
}

// localField returns h_i = sum of w * spins[j] over site i's neighbors.
func localField(spins spin.Vector, nbs []lattice.Neighbor) float64 {
	h := 0.0
	for _, nb := range nbs {
		h += nb.Weight * float64(spins[nb.Site])
	}
	return h
}

// metropolis decides a single flip trial. Downhill moves (dE <= 0) are
// accepted outright; uphill moves are accepted with probability
// exp(-dE/t), consuming exactly one uniform draw.
func metropolis(dE, t float64, rng *util.RNG) bool {
	if dE <= 0 {
		return true
	}
	return math.Exp(-dE/t) > rng.Float64()
}
