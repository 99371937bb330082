package tempo

import "fmt"

// ClockError is an OS-level failure to read or set a clock. Err holds the
// raw errno exactly as the kernel reported it, reachable through
// errors.Is/errors.As via Unwrap.
type ClockError struct {
	Clock ClockKind
	Op    string
	Err   error
}

func (e *ClockError) Error() string {
	return fmt.Sprintf("failed to %s %s clock: %v", e.Op, e.Clock, e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// DriftError gets returned when the wall clock read as "later" is in fact
// earlier than the reference point - the clock was stepped backwards
// between the two readings, or the arguments were misordered. Magnitude
// carries the size of the reverse difference.
type DriftError struct {
	Magnitude Duration
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("wall clock went backwards by %v relative to the reference point", e.Magnitude)
}
