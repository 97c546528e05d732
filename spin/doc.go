// Package spin holds the spin-state containers of the simulation: the
// single configuration mutated by classical annealing, the N x P Trotter
// replica ensemble mutated by quantum Monte Carlo, and the classical
// Ising energy evaluator.
package spin
