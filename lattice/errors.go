package lattice

import "fmt"

// ErrNotSquare reports a spin count that does not form a square 2D grid.
// Lenient callers warn and round down instead of failing on it.
type ErrNotSquare struct {
	Spins int
}

func (e *ErrNotSquare) Error() string {
	return fmt.Sprintf("spin count %d does not form a square lattice", e.Spins)
}

// ErrBadProblem reports a malformed coupling problem definition, either
// from a problem file or from inconsistent construction arguments.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrBadProblem struct {
	Path   string
	Reason string
	cause  error
}

func (e *ErrBadProblem) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("bad coupling problem: %s", e.Reason)
	}
	return fmt.Sprintf("bad coupling problem %q: %s", e.Path, e.Reason)
}

func (e *ErrBadProblem) Unwrap() error { return e.cause }
