package annealgo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/annealgo/anneal"
	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/spin"
	"github.com/hupe1980/annealgo/testutil"
	"github.com/hupe1980/annealgo/util"
)

func ferromagneticPair(t *testing.T) *lattice.CouplingMatrix {
	t.Helper()
	m, _ := testutil.FerromagneticPair(t)
	return m
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero slices", []Option{WithTrotterSlices(0)}, ErrInvalidSlices},
		{"zero steps", []Option{WithAnnealingSteps(0)}, ErrInvalidSteps},
		{"negative steps", []Option{WithAnnealingSteps(-5)}, ErrInvalidSteps},
		{"zero temperature", []Option{WithTemperature(0)}, ErrInvalidTemperature},
		{"field end zero", []Option{WithTransverseField(1.5, 0)}, ErrInvalidField},
		{"field increasing", []Option{WithTransverseField(0.5, 1.5)}, ErrInvalidField},
		{"negative pre-annealing", []Option{WithPreAnnealingSteps(-1)}, ErrInvalidPreAnnealing},
		{"tiny lattice", []Option{WithSpins(2)}, ErrInvalidSpins},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMinimizeDeterminism(t *testing.T) {
	run := func() *Result {
		sim, err := New(
			WithSpins(16),
			WithTrotterSlices(8),
			WithAnnealingSteps(50),
			WithSeed(1234),
		)
		require.NoError(t, err)

		res, err := sim.Minimize(context.Background())
		require.NoError(t, err)
		return res
	}

	a, b := run(), run()
	assert.Equal(t, a.Energy, b.Energy)
	assert.Equal(t, a.Spins, b.Spins)
	assert.Equal(t, a.ReplicaEnergies, b.ReplicaEnergies)
}

func TestMinimizeSeedReproducesUnseededRun(t *testing.T) {
	sim, err := New(WithSpins(16), WithAnnealingSteps(20))
	require.NoError(t, err)

	first, err := sim.Minimize(context.Background())
	require.NoError(t, err)

	replay, err := New(WithSpins(16), WithAnnealingSteps(20), WithSeed(first.Seed))
	require.NoError(t, err)

	second, err := replay.Minimize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Energy, second.Energy)
	assert.Equal(t, first.Spins, second.Spins)
}

func TestMinimizePostCondition(t *testing.T) {
	problem := ferromagneticPair(t)

	sim, err := New(
		WithProblem(problem),
		WithTrotterSlices(5),
		WithAnnealingSteps(50),
		WithSeed(7),
	)
	require.NoError(t, err)

	res, err := sim.Minimize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, spin.ClassicalEnergy(res.Spins, problem), res.Energy)
	assert.Len(t, res.ReplicaEnergies, 5)
	for _, e := range res.ReplicaEnergies {
		assert.GreaterOrEqual(t, e, res.Energy)
	}
}

func TestMinimizeGroundStateScenario(t *testing.T) {
	problem := ferromagneticPair(t)

	converged := 0
	const runs = 100
	for seed := int64(0); seed < runs; seed++ {
		sim, err := New(
			WithProblem(problem),
			WithPreAnnealingTemperature(3.0),
			WithPreAnnealingSteps(100),
			WithTemperature(0.01),
			WithTransverseField(1.5, 1e-8),
			WithAnnealingSteps(100),
			WithSeed(seed),
		)
		require.NoError(t, err)

		res, err := sim.Minimize(context.Background())
		require.NoError(t, err)

		if res.Energy == -1 {
			converged++
			require.Equal(t, res.Spins[0], res.Spins[1])
		}
	}
	assert.GreaterOrEqual(t, converged, runs*9/10,
		"ground state reached in %d/%d runs", converged, runs)
}

func TestMinimizeNonSquareLattice(t *testing.T) {
	t.Run("lenient", func(t *testing.T) {
		// 8 spins round down to a 2x2 grid.
		sim, err := New(WithSpins(8), WithAnnealingSteps(10), WithSeed(1))
		require.NoError(t, err)

		res, err := sim.Minimize(context.Background())
		require.NoError(t, err)
		assert.Len(t, res.Spins, 4)
	})

	t.Run("strict", func(t *testing.T) {
		sim, err := New(WithSpins(8), WithStrictLattice(true), WithSeed(1))
		require.NoError(t, err)

		_, err = sim.Minimize(context.Background())
		assert.ErrorIs(t, err, ErrNonSquareLattice)

		var notSquare *lattice.ErrNotSquare
		assert.ErrorAs(t, err, &notSquare)
	})
}

func TestMinimizeFromProblemFile(t *testing.T) {
	m, err := lattice.Generate2D(4, util.NewRNG(99))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "problem.json.zst")
	require.NoError(t, lattice.SaveFile(path, m, nil))

	sim, err := New(
		WithProblemFile(path),
		WithTrotterSlices(4),
		WithAnnealingSteps(20),
		WithSeed(5),
	)
	require.NoError(t, err)

	res, err := sim.Minimize(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Spins, 16)
	assert.Equal(t, spin.ClassicalEnergy(res.Spins, m), res.Energy)
}

func TestMinimizeBadProblemFile(t *testing.T) {
	sim, err := New(WithProblemFile(filepath.Join(t.TempDir(), "absent.json")))
	require.NoError(t, err)

	_, err = sim.Minimize(context.Background())
	require.Error(t, err)
}

func TestMinimizeWithoutPreAnnealing(t *testing.T) {
	sim, err := New(
		WithProblem(ferromagneticPair(t)),
		WithPreAnnealing(false),
		WithAnnealingSteps(50),
		WithSeed(3),
	)
	require.NoError(t, err)

	res, err := sim.Minimize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, anneal.Stats{}, res.PreAnneal)
	assert.Equal(t, 50, res.Quantum.Sweeps)
}

func TestMinimizeRecordsMetrics(t *testing.T) {
	mc := &BasicMetricsCollector{}

	sim, err := New(
		WithSpins(16),
		WithAnnealingSteps(10),
		WithSeed(2),
		WithMetricsCollector(mc),
	)
	require.NoError(t, err)

	_, err = sim.Minimize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), mc.PreAnnealCount.Load())
	assert.Equal(t, int64(1), mc.QuantumCount.Load())
	assert.Equal(t, int64(1), mc.MinimizeCount.Load())
	assert.Equal(t, int64(0), mc.MinimizeErrors.Load())
	assert.Positive(t, mc.QuantumAccepted.Load()+mc.QuantumRejected.Load())
}

func TestMinimizeCancelledContext(t *testing.T) {
	sim, err := New(WithSpins(16), WithSeed(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = sim.Minimize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMinimizeScanWorkers(t *testing.T) {
	sim, err := New(
		WithSpins(16),
		WithTrotterSlices(8),
		WithAnnealingSteps(20),
		WithSeed(11),
		WithScanWorkers(1),
	)
	require.NoError(t, err)

	serial, err := sim.Minimize(context.Background())
	require.NoError(t, err)

	sim2, err := New(
		WithSpins(16),
		WithTrotterSlices(8),
		WithAnnealingSteps(20),
		WithSeed(11),
		WithScanWorkers(4),
	)
	require.NoError(t, err)

	parallel, err := sim2.Minimize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, serial.Energy, parallel.Energy)
	assert.Equal(t, serial.Spins, parallel.Spins)
}
