// Package anneal implements the two annealing stages of the simulation.
//
// Classical runs Metropolis simulated annealing on a single spin vector
// over a decreasing temperature schedule; it seeds the Trotter ensemble.
// Quantum runs path-integral quantum Monte Carlo over that ensemble: the
// transverse-field Ising model is decomposed (Suzuki-Trotter) into P
// coupled classical replicas on a ring, swept at fixed temperature while
// the transverse field anneals toward zero.
//
// Both stages are single-threaded, mutate their spin arrays in place,
// and draw from an explicit RNG in a fixed order, so a seeded run is
// bit-reproducible.
package anneal
