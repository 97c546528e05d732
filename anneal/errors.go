package anneal

// ErrBadSchedule reports an annealing schedule that cannot be run, e.g.
// a non-positive step count for the quantum stage or geometric
// interpolation with non-positive endpoints.
type ErrBadSchedule struct {
	Reason string
}

func (e *ErrBadSchedule) Error() string {
	return "bad annealing schedule: " + e.Reason
}
