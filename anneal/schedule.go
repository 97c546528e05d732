package anneal

import (
	"fmt"
	"math"
)

// ScheduleKind selects how a decreasing schedule interpolates between
// its endpoints.
type ScheduleKind int

const (
	// Linear interpolates in equal decrements. The default.
	Linear ScheduleKind = iota
	// Geometric interpolates with a constant ratio. Both endpoints must
	// be positive.
	Geometric
)

func (k ScheduleKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Geometric:
		return "geometric"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Temperatures returns a schedule of steps values running from start to
// end inclusive. steps == 0 yields an empty schedule, steps == 1 yields
// just start. The schedule is monotonically decreasing when start > end.
func Temperatures(kind ScheduleKind, start, end float64, steps int) ([]float64, error) {
	if steps < 0 {
		return nil, &ErrBadSchedule{Reason: "step count must not be negative"}
	}
	if steps == 0 {
		return nil, nil
	}

	out := make([]float64, steps)
	out[0] = start
	if steps == 1 {
		return out, nil
	}

	switch kind {
	case Linear:
		d := (end - start) / float64(steps-1)
		for i := 1; i < steps; i++ {
			out[i] = start + float64(i)*d
		}
	case Geometric:
		if start <= 0 || end <= 0 {
			return nil, &ErrBadSchedule{Reason: "geometric schedule requires positive endpoints"}
		}
		ratio := math.Pow(end/start, 1/float64(steps-1))
		for i := 1; i < steps; i++ {
			out[i] = out[i-1] * ratio
		}
	default:
		return nil, &ErrBadSchedule{Reason: "unknown schedule kind"}
	}

	out[steps-1] = end
	return out, nil
}
