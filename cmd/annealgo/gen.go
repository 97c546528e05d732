package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/annealgo/lattice"
	"github.com/hupe1980/annealgo/util"
)

func newGenCmd() *cobra.Command {
	var (
		dim    int
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random toroidal 2D Ising problem file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			m, err := lattice.Generate2D(dim, util.NewRNG(seed))
			if err != nil {
				return err
			}
			if err := lattice.SaveFile(output, m, nil); err != nil {
				return err
			}

			fmt.Printf("wrote %d-spin problem to %s (seed %d)\n", m.Size(), output, seed)
			return nil
		},
	}

	cmd.Flags().IntVar(&dim, "dim", 8, "linear grid dimension L; the lattice has L*L spins")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for the coupling weights")
	cmd.Flags().StringVar(&output, "output", "problem.json.zst", "output path; .zst enables compression")

	return cmd
}
