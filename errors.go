package annealgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/annealgo/anneal"
	"github.com/hupe1980/annealgo/lattice"
)

var (
	// ErrInvalidSlices is returned when the Trotter slice count is not positive.
	ErrInvalidSlices = errors.New("trotter slices must be positive")

	// ErrInvalidSteps is returned when the quantum annealing step count is
	// not positive. Zero steps would leave the per-step field decrement
	// undefined, so it is rejected up front.
	ErrInvalidSteps = errors.New("annealing steps must be positive")

	// ErrInvalidTemperature is returned when the simulation temperature is
	// not positive.
	ErrInvalidTemperature = errors.New("annealing temperature must be positive")

	// ErrInvalidField is returned when the transverse field bounds do not
	// satisfy start >= end > 0.
	ErrInvalidField = errors.New("transverse field must satisfy start >= end > 0")

	// ErrInvalidSpins is returned when the spin count cannot seed a lattice.
	ErrInvalidSpins = errors.New("spin count too small for a 2D lattice")

	// ErrInvalidPreAnnealing is returned for a negative pre-annealing step count.
	ErrInvalidPreAnnealing = errors.New("pre-annealing steps must not be negative")

	// ErrInvalidProblem wraps a malformed coupling problem (bad file,
	// inconsistent diagonals). The cause is available via errors.Unwrap.
	ErrInvalidProblem = errors.New("invalid coupling problem")

	// ErrNonSquareLattice wraps *lattice.ErrNotSquare when strict lattice
	// validation is enabled.
	ErrNonSquareLattice = errors.New("non-square lattice")

	// ErrInvalidSchedule wraps *anneal.ErrBadSchedule for schedules that
	// pass construction-time checks but cannot be run, e.g. a geometric
	// schedule with non-positive endpoints.
	ErrInvalidSchedule = errors.New("invalid annealing schedule")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var notSquare *lattice.ErrNotSquare
	if errors.As(err, &notSquare) {
		return fmt.Errorf("%w: %w", ErrNonSquareLattice, err)
	}
	var badProblem *lattice.ErrBadProblem
	if errors.As(err, &badProblem) {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	var badSchedule *anneal.ErrBadSchedule
	if errors.As(err, &badSchedule) {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}

	return err
}
