package annealgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/annealgo"
	"github.com/hupe1980/annealgo/lattice"
)

func ExampleSimulator_Minimize() {
	// A 2-site ferromagnet: one bond with weight -1, ground states
	// (+1,+1) and (-1,-1) at energy -1.
	problem, err := lattice.NewCouplingMatrix(2, []int{1}, [][]float64{{-1, 0}})
	if err != nil {
		log.Fatal(err)
	}

	sim, err := annealgo.New(
		annealgo.WithProblem(problem),
		annealgo.WithPreAnnealingSteps(100),
		annealgo.WithSeed(1234),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := sim.Minimize(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Energy)
	// Output: -1
}
