package tempo

import (
	"fmt"

	"github.com/muyo/tempo/internal"
)

// ClockKind identifies one of the platform's clocks. The value of each
// constant is the native clock id the kernel expects, so the mapping is a
// build-time table selected alongside the target OS - see the per-platform
// files for the sets available. Only ClockRealtime and ClockMonotonic exist
// on every supported platform.
type ClockKind int32

// ReadClock returns the current reading of the given clock.
//
// The read is attempted through the process-wide fast path where one is
// available and falls back to a full kernel transition otherwise. Any
// OS-level failure is returned as a *ClockError wrapping the raw errno,
// with no retries - a failing clock id signals an environment problem the
// caller needs to see, not mask.
func ReadClock(kind ClockKind) (Timestamp, error) {
	ts, err := internal.Gettime(int32(kind))
	if err != nil {
		return Timestamp{}, &ClockError{Clock: kind, Op: "read", Err: err}
	}

	sec, nsec := ts.Unix()

	return Timestamp{secs: sec, nsecs: uint32(nsec)}, nil
}

// Supported returns the clocks available on this platform.
func Supported() []ClockKind {
	out := make([]ClockKind, len(supportedClocks))
	copy(out, supportedClocks)

	return out
}

// LookupClock resolves a symbolic clock name, as produced by String, to
// its ClockKind.
func LookupClock(name string) (ClockKind, bool) {
	for kind, n := range clockNames {
		if n == name {
			return kind, true
		}
	}

	return 0, false
}

func (k ClockKind) String() string {
	if name, ok := clockNames[k]; ok {
		return name
	}

	return fmt.Sprintf("clock(%d)", int32(k))
}

func setClock(t Timestamp) error {
	if err := internal.Settime(t.secs, t.nsecs); err != nil {
		return &ClockError{Clock: ClockRealtime, Op: "set", Err: err}
	}

	return nil
}
