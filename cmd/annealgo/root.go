package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annealgo",
		Short: "Path-integral quantum annealing for 2D Ising lattices",
		Long: `annealgo simulates quantum annealing on a 2D Ising spin lattice using
path-integral quantum Monte Carlo: a classical pre-annealing stage seeds
P Trotter replicas, which are then swept with a decreasing transverse
field until the lowest-energy configuration is read out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newGenCmd())

	return cmd
}
