package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/annealgo"
	"github.com/hupe1980/annealgo/anneal"
)

func newRunCmd() *cobra.Command {
	var (
		spins     int
		slices    int
		temp      float64
		steps     int
		fieldFrom float64
		fieldTo   float64
		pre       bool
		preSteps  int
		preTemp   float64
		seed      int64
		input     string
		schedule  string
		strict    bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a quantum annealing simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := anneal.Linear
			switch schedule {
			case "linear":
			case "geometric":
				kind = anneal.Geometric
			default:
				return fmt.Errorf("unknown schedule %q (want linear or geometric)", schedule)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			opts := []annealgo.Option{
				annealgo.WithSpins(spins),
				annealgo.WithTrotterSlices(slices),
				annealgo.WithTemperature(temp),
				annealgo.WithAnnealingSteps(steps),
				annealgo.WithTransverseField(fieldFrom, fieldTo),
				annealgo.WithPreAnnealing(pre),
				annealgo.WithPreAnnealingSteps(preSteps),
				annealgo.WithPreAnnealingTemperature(preTemp),
				annealgo.WithSchedule(kind),
				annealgo.WithStrictLattice(strict),
				annealgo.WithLogger(annealgo.NewTextLogger(level)),
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, annealgo.WithSeed(seed))
			}
			if input != "" {
				opts = append(opts, annealgo.WithProblemFile(input))
			}

			sim, err := annealgo.New(opts...)
			if err != nil {
				return err
			}

			res, err := sim.Minimize(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("seed:       %d\n", res.Seed)
			fmt.Printf("min energy: %g\n", res.Energy)
			fmt.Printf("spins:      %v\n", res.Spins)
			if verbose {
				fmt.Printf("replica energies: %v\n", res.ReplicaEnergies)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&spins, "spins", 8, "number of spins in the 2D Ising lattice")
	cmd.Flags().IntVar(&slices, "trotter-slices", 20, "number of Trotter slices")
	cmd.Flags().Float64Var(&temp, "temperature", 0.01, "temperature during quantum annealing")
	cmd.Flags().IntVar(&steps, "annealing-steps", 100, "number of quantum annealing steps")
	cmd.Flags().Float64Var(&fieldFrom, "field-start", 1.5, "starting transverse field")
	cmd.Flags().Float64Var(&fieldTo, "field-end", 1e-8, "final transverse field")
	cmd.Flags().BoolVar(&pre, "pre-annealing", true, "classically pre-anneal the seed configuration")
	cmd.Flags().IntVar(&preSteps, "pre-annealing-steps", 1, "number of classical pre-annealing sweeps")
	cmd.Flags().Float64Var(&preTemp, "pre-annealing-temperature", 3.0, "starting temperature for pre-annealing")
	cmd.Flags().Int64Var(&seed, "seed", 1234, "RNG seed; omit for a fresh seed per run")
	cmd.Flags().StringVar(&input, "input", "", "problem file with the Ising coupling matrix")
	cmd.Flags().StringVar(&schedule, "schedule", "linear", "pre-annealing temperature schedule (linear or geometric)")
	cmd.Flags().BoolVar(&strict, "strict-lattice", false, "reject non-square spin counts instead of warning")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-stage diagnostics")

	return cmd
}
