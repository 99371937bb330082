package tempo

import (
	"fmt"
	"math"
	"time"
)

const nsecsInSec = 1_000_000_000

// Duration is a non-negative span of time with nanosecond precision,
// stored as whole seconds plus a sub-second remainder.
//
// Unlike time.Duration, which is a single int64 of nanoseconds capped at
// roughly 292 years, a Duration spans the entire uint64 seconds range. The
// checked arithmetic on Timestamp depends on that headroom - a span too
// large to apply must be reported as such, not wrapped or clamped up front.
//
// The zero value is the zero span.
type Duration struct {
	secs  uint64
	nsecs uint32
}

// NewDuration returns the span of secs seconds and nsecs nanoseconds.
//
// nsecs does not need to be sub-second; whole seconds contained in it are
// carried over into the seconds component. Panics if that carry overflows
// the seconds range.
func NewDuration(secs uint64, nsecs uint32) Duration {
	carry := uint64(nsecs / nsecsInSec)
	if secs > math.MaxUint64-carry {
		panic("tempo: duration seconds overflow")
	}

	return Duration{secs: secs + carry, nsecs: nsecs % nsecsInSec}
}

// DurationFromNanos returns the span of ns nanoseconds.
func DurationFromNanos(ns uint64) Duration {
	return Duration{secs: ns / nsecsInSec, nsecs: uint32(ns % nsecsInSec)}
}

// DurationFromStd converts a time.Duration. Returns false for negative
// input, which has no representation here.
func DurationFromStd(d time.Duration) (Duration, bool) {
	if d < 0 {
		return Duration{}, false
	}

	return DurationFromNanos(uint64(d)), true
}

// Secs returns the whole seconds of the span.
func (d Duration) Secs() uint64 {
	return d.secs
}

// Nanos returns the sub-second remainder of the span, in [0, 1e9).
func (d Duration) Nanos() uint32 {
	return d.nsecs
}

// TotalNanos returns the entire span in nanoseconds and true, or false when
// the span does not fit in a uint64 of nanoseconds.
func (d Duration) TotalNanos() (uint64, bool) {
	if d.secs > (math.MaxUint64-uint64(d.nsecs))/nsecsInSec {
		return 0, false
	}

	return d.secs*nsecsInSec + uint64(d.nsecs), true
}

// Std converts the span to a time.Duration and true, or false when the span
// exceeds the time.Duration range.
func (d Duration) Std() (time.Duration, bool) {
	ns, ok := d.TotalNanos()
	if !ok || ns > math.MaxInt64 {
		return 0, false
	}

	return time.Duration(ns), true
}

// IsZero reports whether the span is zero.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nsecs == 0
}

// Cmp compares two spans, returning -1 when d is shorter than other,
// 0 when equal and 1 when longer.
func (d Duration) Cmp(other Duration) int {
	switch {
	case d.secs < other.secs:
		return -1
	case d.secs > other.secs:
		return 1
	case d.nsecs < other.nsecs:
		return -1
	case d.nsecs > other.nsecs:
		return 1
	}

	return 0
}

func (d Duration) String() string {
	return fmt.Sprintf("%d.%09ds", d.secs, d.nsecs)
}
