// Package testutil provides testing fixtures for annealgo.
//
// This package is intended for use in tests and benchmarks only. It
// provides small coupling problems with known ground states and seeded
// random lattices.
package testutil
