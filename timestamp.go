package tempo

import (
	"fmt"
	"math"
)

// Timestamp is a fixed point in time: whole seconds relative to a clock's
// epoch plus a sub-second remainder in nanoseconds.
//
// Timestamps are plain immutable values - comparable with ==, usable as map
// keys and freely shareable across goroutines. The sub-second component is
// always normalized into [0, 1e9); every arithmetic operation re-normalizes
// by carrying into or borrowing from the seconds component.
type Timestamp struct {
	secs  int64
	nsecs uint32
}

// NewTimestamp returns the timestamp of secs seconds and nsecs nanoseconds.
//
// nsecs does not need to be sub-second; whole seconds contained in it are
// carried over into the seconds component. Panics if that carry overflows
// the seconds range.
func NewTimestamp(secs int64, nsecs uint32) Timestamp {
	carry := int64(nsecs / nsecsInSec)
	if secs > math.MaxInt64-carry {
		panic("tempo: timestamp seconds overflow")
	}

	return Timestamp{secs: secs + carry, nsecs: nsecs % nsecsInSec}
}

// Secs returns the seconds component of the timestamp.
func (t Timestamp) Secs() int64 {
	return t.secs
}

// Nanos returns the sub-second component of the timestamp, in [0, 1e9).
func (t Timestamp) Nanos() uint32 {
	return t.nsecs
}

// Cmp compares two timestamps lexicographically on (seconds, nanoseconds),
// returning -1 when t is before other, 0 when equal and 1 when after.
func (t Timestamp) Cmp(other Timestamp) int {
	switch {
	case t.secs < other.secs:
		return -1
	case t.secs > other.secs:
		return 1
	case t.nsecs < other.nsecs:
		return -1
	case t.nsecs > other.nsecs:
		return 1
	}

	return 0
}

// Before reports whether t is strictly earlier than other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.Cmp(other) < 0
}

// After reports whether t is strictly later than other.
func (t Timestamp) After(other Timestamp) bool {
	return t.Cmp(other) > 0
}

// Sub returns the span between two timestamps along with its direction:
// (t - other, true) when t is not earlier than other, and otherwise the
// magnitude of the reverse difference (other - t) paired with false.
//
// Only the forward branch performs the borrow arithmetic; the reverse
// branch derives its magnitude by recursing with the arguments swapped,
// so there is exactly one subtraction path to get right.
func (t Timestamp) Sub(other Timestamp) (Duration, bool) {
	if t.Cmp(other) >= 0 {
		var (
			secs  = t.secs - other.secs
			nsecs = t.nsecs
		)
		if nsecs >= other.nsecs {
			nsecs -= other.nsecs
		} else {
			secs--
			nsecs += nsecsInSec - other.nsecs
		}

		return Duration{secs: uint64(secs), nsecs: nsecs}, true
	}

	d, _ := other.Sub(t)

	return d, false
}

// CheckedAdd returns t shifted forward by d, or false when the result
// cannot be represented.
func (t Timestamp) CheckedAdd(d Duration) (Timestamp, bool) {
	secs, ok := checkedAddUnsigned(t.secs, d.secs)
	if !ok {
		return Timestamp{}, false
	}

	// Both sub-second components are below 1e9, so their sum cannot
	// overflow - at most a single second is carried.
	nsecs := t.nsecs + d.nsecs
	if nsecs >= nsecsInSec {
		nsecs -= nsecsInSec
		if secs == math.MaxInt64 {
			return Timestamp{}, false
		}
		secs++
	}

	return Timestamp{secs: secs, nsecs: nsecs}, true
}

// CheckedSub returns t shifted backward by d, or false when the result
// cannot be represented.
func (t Timestamp) CheckedSub(d Duration) (Timestamp, bool) {
	secs, ok := checkedSubUnsigned(t.secs, d.secs)
	if !ok {
		return Timestamp{}, false
	}

	nsecs := int64(t.nsecs) - int64(d.nsecs)
	if nsecs < 0 {
		nsecs += nsecsInSec
		if secs == math.MinInt64 {
			return Timestamp{}, false
		}
		secs--
	}

	return Timestamp{secs: secs, nsecs: uint32(nsecs)}, true
}

func (t Timestamp) String() string {
	return fmt.Sprintf("Timestamp(%d, %d)", t.secs, t.nsecs)
}

func checkedAddUnsigned(a int64, b uint64) (int64, bool) {
	if b > math.MaxInt64 {
		return 0, false
	}
	if a > math.MaxInt64-int64(b) {
		return 0, false
	}

	return a + int64(b), true
}

func checkedSubUnsigned(a int64, b uint64) (int64, bool) {
	if b > math.MaxInt64 {
		return 0, false
	}
	if a < math.MinInt64+int64(b) {
		return 0, false
	}

	return a - int64(b), true
}
