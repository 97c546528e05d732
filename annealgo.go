package annealgo

import (
	"context"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/annealgo/anneal"
	"github.com/hupe1980/annealgo/codec"
	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/spin"
	"github.com/hupe1980/annealgo/util"
)

// Result is the outcome of one complete simulation.
type Result struct {
	// Energy is the classical Ising energy of Spins; it equals
	// spin.ClassicalEnergy(Spins, problem) exactly.
	Energy float64

	// Spins is the lowest-energy replica configuration, copied out of
	// the ensemble.
	Spins spin.Vector

	// ReplicaEnergies holds the final classical energy of every Trotter
	// replica, indexed by slice.
	ReplicaEnergies []float64

	// Seed is the RNG seed the run actually used. Feeding it back via
	// WithSeed reproduces the run bit for bit.
	Seed int64

	// PreAnneal and Quantum report the Metropolis totals of each stage.
	PreAnneal anneal.Stats
	Quantum   anneal.Stats
}

// Simulator runs the full annealing pipeline: problem assembly,
// classical pre-annealing, path-integral quantum Monte Carlo, and the
// final scan for the lowest-energy replica.
//
// A Simulator is immutable after construction; Minimize may be called
// repeatedly (unseeded runs then differ, seeded runs repeat exactly).
type Simulator struct {
	opts options
}

// New creates a Simulator. Defaults: 20 Trotter slices, 8 spins,
// temperature 0.01, 100 annealing steps,
// transverse field 1.5 down to 1e-8, and a single pre-annealing sweep
// from temperature 3.0.
func New(optFns ...Option) (*Simulator, error) {
	opts := options{
		trotterSlices: 20,
		spins:         8,
		temperature:   0.01,
		steps:         100,
		gammaStart:    1.5,
		gammaEnd:      1e-8,
		preAnneal:     true,
		preSteps:      1,
		preTemp:       3.0,
		schedule:      anneal.Linear,
		codec:         codec.Default,
		logger:        NoopLogger(),
		metrics:       NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.trotterSlices < 1 {
		return nil, ErrInvalidSlices
	}
	if opts.steps < 1 {
		return nil, ErrInvalidSteps
	}
	if opts.temperature <= 0 {
		return nil, ErrInvalidTemperature
	}
	if opts.gammaEnd <= 0 || opts.gammaStart < opts.gammaEnd {
		return nil, ErrInvalidField
	}
	if opts.preSteps < 0 {
		return nil, ErrInvalidPreAnnealing
	}
	if opts.problem == nil && opts.problemPath == "" && opts.spins < 4 {
		return nil, ErrInvalidSpins
	}

	return &Simulator{opts: opts}, nil
}

// Minimize runs the simulation and returns the lowest-energy replica
// configuration together with its classical energy. It either returns a
// complete result or fails before the first spin flip; there are no
// partial results.
func (s *Simulator) Minimize(ctx context.Context) (*Result, error) {
	start := time.Now()
	res, err := s.minimize(ctx)
	s.opts.metrics.RecordMinimize(time.Since(start), err)
	if res != nil {
		s.opts.logger.LogMinimize(ctx, res.Energy, res.Seed, err)
	} else {
		s.opts.logger.LogMinimize(ctx, math.NaN(), 0, err)
	}
	return res, err
}

func (s *Simulator) minimize(ctx context.Context) (*Result, error) {
	seed := s.opts.seed
	if !s.opts.seeded {
		seed = time.Now().UnixNano()
	}
	rng := util.NewRNG(seed)

	problem, err := s.assembleProblem(rng)
	if err != nil {
		return nil, translateError(err)
	}
	n := problem.Size()
	p := s.opts.trotterSlices
	logger := s.opts.logger.WithSeed(seed).WithLattice(n, p)

	neighbors := lattice.BuildNeighbors(problem)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	spins := spin.Random(n, rng)
	logger.DebugContext(ctx, "initial configuration",
		"energy", spin.ClassicalEnergy(spins, problem),
	)

	var preStats anneal.Stats
	if s.opts.preAnneal && s.opts.preSteps > 0 {
		stageStart := time.Now()
		preStats, err = anneal.Classical{
			TStart: s.opts.preTemp,
			TEnd:   s.opts.temperature,
			Steps:  s.opts.preSteps,
			Kind:   s.opts.schedule,
		}.Anneal(spins, neighbors, rng)
		s.opts.metrics.RecordPreAnneal(preStats, time.Since(stageStart), err)
		if err != nil {
			return nil, translateError(err)
		}
		logger.LogPreAnneal(ctx, spin.ClassicalEnergy(spins, problem), preStats, nil)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	replicas := spin.Tile(spins, p)

	stageStart := time.Now()
	qStats, err := anneal.Quantum{
		GammaStart: s.opts.gammaStart,
		GammaEnd:   s.opts.gammaEnd,
		Steps:      s.opts.steps,
		T:          s.opts.temperature,
	}.Anneal(replicas, neighbors, rng)
	s.opts.metrics.RecordQuantum(qStats, time.Since(stageStart), err)
	if err != nil {
		return nil, translateError(err)
	}
	logger.LogQuantum(ctx, qStats, nil)

	energies, err := s.scanReplicas(ctx, replicas, problem)
	if err != nil {
		return nil, err
	}

	best := 0
	for k := 1; k < p; k++ {
		if energies[k] < energies[best] {
			best = k
		}
	}

	return &Result{
		Energy:          energies[best],
		Spins:           replicas.Replica(best).Clone(),
		ReplicaEnergies: energies,
		Seed:            seed,
		PreAnneal:       preStats,
		Quantum:         qStats,
	}, nil
}

// assembleProblem resolves the coupling source: problem file, in-memory
// matrix, or a randomly generated toroidal lattice.
func (s *Simulator) assembleProblem(rng *util.RNG) (*lattice.CouplingMatrix, error) {
	if s.opts.problemPath != "" {
		return lattice.LoadFile(s.opts.problemPath, s.opts.codec)
	}
	if s.opts.problem != nil {
		return s.opts.problem, nil
	}

	l := int(math.Sqrt(float64(s.opts.spins)))
	if l*l != s.opts.spins {
		if s.opts.strict {
			return nil, &lattice.ErrNotSquare{Spins: s.opts.spins}
		}
		s.opts.logger.Warn("spin count indicates a non-square lattice",
			"spins", s.opts.spins,
			"grid", l,
		)
	}
	return lattice.Generate2D(l, rng)
}

// scanReplicas computes the classical energy of every replica column.
// The ensemble is read-only at this point, so the columns fan out over
// a worker-bounded errgroup without affecting determinism.
func (s *Simulator) scanReplicas(ctx context.Context, replicas *spin.Replicas, problem *lattice.CouplingMatrix) ([]float64, error) {
	p := replicas.Slices()
	energies := make([]float64, p)

	g, _ := errgroup.WithContext(ctx)
	workers := s.opts.scanWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)

	for k := 0; k < p; k++ {
		k := k
		g.Go(func() error {
			energies[k] = spin.ClassicalEnergy(replicas.Replica(k), problem)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return energies, nil
}
