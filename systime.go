package tempo

import "fmt"

// SystemTime is a measurement of the wall clock, anchored to the Unix epoch
// (1970-01-01T00:00:00Z, the zero value).
//
// The wall clock is not monotonic: an administrator or NTP can step it
// backwards at any moment, so the span between two SystemTime values is a
// fallible question. DurationSince deliberately has no saturating sibling
// here - a caller subtracting wall-clock readings must decide what a
// backwards jump means for them, with the magnitude of the jump in hand.
type SystemTime struct {
	t Timestamp
}

// UnixEpoch is the reference point of SystemTime: 1970-01-01T00:00:00Z.
var UnixEpoch = SystemTime{}

// SystemNow returns the current reading of the wall clock.
//
// Panics if the clock read fails at the OS level, which cannot happen on a
// correctly configured system; see Now.
func SystemNow() SystemTime {
	ts, err := ReadClock(ClockRealtime)
	if err != nil {
		panic(err)
	}

	return SystemTime{t: ts}
}

// SystemTimeOf returns the wall-clock point at the given offset from the
// Unix epoch.
func SystemTimeOf(secs int64, nsecs uint32) SystemTime {
	return SystemTime{t: NewTimestamp(secs, nsecs)}
}

// DurationSince returns the span from earlier to st.
//
// If earlier is in fact later than st - the wall clock went backwards
// between the two readings, or the arguments are misordered - it returns a
// *DriftError carrying the magnitude of the reverse difference.
func (st SystemTime) DurationSince(earlier SystemTime) (Duration, error) {
	d, forward := st.t.Sub(earlier.t)
	if !forward {
		return Duration{}, &DriftError{Magnitude: d}
	}

	return d, nil
}

// Elapsed returns the span from st to the current wall-clock reading,
// failing like DurationSince when the clock has gone backwards since st
// was taken.
func (st SystemTime) Elapsed() (Duration, error) {
	return SystemNow().DurationSince(st)
}

// CheckedAdd returns the point d later than st, or false when the result
// cannot be represented.
func (st SystemTime) CheckedAdd(d Duration) (SystemTime, bool) {
	t, ok := st.t.CheckedAdd(d)
	if !ok {
		return SystemTime{}, false
	}

	return SystemTime{t: t}, true
}

// CheckedSub returns the point d earlier than st, or false when the result
// cannot be represented.
func (st SystemTime) CheckedSub(d Duration) (SystemTime, bool) {
	t, ok := st.t.CheckedSub(d)
	if !ok {
		return SystemTime{}, false
	}

	return SystemTime{t: t}, true
}

// Add returns the point d later than st. Panics when the result cannot be
// represented; use CheckedAdd to handle the failure instead.
func (st SystemTime) Add(d Duration) SystemTime {
	out, ok := st.CheckedAdd(d)
	if !ok {
		panic("tempo: overflow when adding duration to system time")
	}

	return out
}

// Sub returns the point d earlier than st. Panics when the result cannot
// be represented; use CheckedSub to handle the failure instead.
func (st SystemTime) Sub(d Duration) SystemTime {
	out, ok := st.CheckedSub(d)
	if !ok {
		panic("tempo: overflow when subtracting duration from system time")
	}

	return out
}

// Before reports whether st is strictly earlier than other.
func (st SystemTime) Before(other SystemTime) bool {
	return st.t.Before(other.t)
}

// After reports whether st is strictly later than other.
func (st SystemTime) After(other SystemTime) bool {
	return st.t.After(other.t)
}

// Cmp compares two points, returning -1 when st is earlier than other,
// 0 when equal and 1 when later.
func (st SystemTime) Cmp(other SystemTime) int {
	return st.t.Cmp(other.t)
}

// Timestamp returns the offset of st from the Unix epoch.
//
// This is the one place the wall-clock handle is transparent: unlike an
// Instant, a SystemTime has a meaningful absolute anchor.
func (st SystemTime) Timestamp() Timestamp {
	return st.t
}

// Set writes st to the system's realtime clock.
//
// Requires the appropriate privilege (CAP_SYS_TIME on Linux, root on the
// BSDs); permission and validation failures surface verbatim from the OS
// as a *ClockError.
func (st SystemTime) Set() error {
	return setClock(st.t)
}

func (st SystemTime) String() string {
	return fmt.Sprintf("SystemTime(%d, %d)", st.t.secs, st.t.nsecs)
}
