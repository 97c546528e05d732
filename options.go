package annealgo

import (
	"github.com/hupe1980/annealgo/anneal"
	"github.com/hupe1980/annealgo/codec"
	"github.com/hupe1980/annealgo/lattice"
)

type options struct {
	trotterSlices int
	spins         int
	temperature   float64
	steps         int
	gammaStart    float64
	gammaEnd      float64
	preAnneal     bool
	preSteps      int
	preTemp       float64
	schedule      anneal.ScheduleKind
	seed          int64
	seeded        bool
	problem       *lattice.CouplingMatrix
	problemPath   string
	codec         codec.Codec
	logger        *Logger
	metrics       MetricsCollector
	strict        bool
	scanWorkers   int
}

// Option configures Simulator construction.
type Option func(*options)

// WithTrotterSlices sets P, the number of Trotter replicas for the
// quantum stage. P == 1 degenerates to a classical Metropolis run at
// fixed temperature. Default 20.
func WithTrotterSlices(p int) Option {
	return func(o *options) {
		o.trotterSlices = p
	}
}

// WithSpins sets the spin count N for randomly generated problems. The
// lattice is a sqrt(N) x sqrt(N) torus; a non-square N is rounded down
// to the nearest square grid and warned about unless WithStrictLattice
// is set. Ignored when a problem source is configured. Default 8.
func WithSpins(n int) Option {
	return func(o *options) {
		o.spins = n
	}
}

// WithTemperature sets the fixed simulation temperature of the quantum
// stage, which is also the terminal temperature of pre-annealing.
// Default 0.01.
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

// WithAnnealingSteps sets the number of quantum annealing steps, i.e.
// the number of full sweeps over all (site, replica) pairs. Must be at
// least 1. Default 100.
func WithAnnealingSteps(steps int) Option {
	return func(o *options) {
		o.steps = steps
	}
}

// WithTransverseField sets the transverse field bounds; the field
// decreases from start to end over the annealing steps. Requires
// start >= end > 0. Default 1.5 down to 1e-8.
func WithTransverseField(start, end float64) Option {
	return func(o *options) {
		o.gammaStart = start
		o.gammaEnd = end
	}
}

// WithPreAnnealing enables or disables the classical pre-annealing
// stage that seeds the replica ensemble. Enabled by default.
func WithPreAnnealing(enabled bool) Option {
	return func(o *options) {
		o.preAnneal = enabled
	}
}

// WithPreAnnealingSteps sets the number of classical sweeps during
// pre-annealing. Zero sweeps keep the random initial configuration.
// Default 1.
func WithPreAnnealingSteps(steps int) Option {
	return func(o *options) {
		o.preSteps = steps
	}
}

// WithPreAnnealingTemperature sets the starting temperature of the
// classical stage; it cools from here to the simulation temperature.
// Default 3.0.
func WithPreAnnealingTemperature(t float64) Option {
	return func(o *options) {
		o.preTemp = t
	}
}

// WithSchedule selects the temperature interpolation of the classical
// stage. Default anneal.Linear; anneal.Geometric requires positive
// temperature endpoints.
func WithSchedule(kind anneal.ScheduleKind) Option {
	return func(o *options) {
		o.schedule = kind
	}
}

// WithSeed fixes the RNG seed, making the whole run bit-reproducible.
// Without it every run draws a fresh seed, reported in the Result.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithProblem supplies an in-memory coupling matrix instead of a
// randomly generated lattice. The matrix is read-only for the run.
func WithProblem(m *lattice.CouplingMatrix) Option {
	return func(o *options) {
		o.problem = m
	}
}

// WithProblemFile loads the coupling matrix from a problem file
// (see lattice.LoadFile). Takes precedence over WithSpins; a file
// also overrides WithProblem when both are set.
func WithProblemFile(path string) Option {
	return func(o *options) {
		o.problemPath = path
	}
}

// WithCodec configures the codec used for decoding problem files.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging. Pass nil to keep the
// default no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// stage outcomes. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithStrictLattice turns the non-square spin count warning into a hard
// validation failure. Off by default.
func WithStrictLattice(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithScanWorkers bounds the goroutines used for the final read-only
// energy scan over the replica columns. Values <= 0 use GOMAXPROCS.
// The scan never affects simulation determinism.
func WithScanWorkers(n int) Option {
	return func(o *options) {
		o.scanWorkers = n
	}
}
