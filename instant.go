package tempo

import "fmt"

// Instant is an opaque measurement of the monotonic clock.
//
// Instants only ever move forward, barring hardware or kernel bugs, which
// makes them the right tool for measuring how long something took. They are
// useful solely in relation to one another - there is no way to extract
// "the time" from an Instant, only the span between two of them.
//
// Even so, the underlying clock is not guaranteed to be steady, and two
// instants taken on different machines - or in different processes - are
// unrelated. The duration operations below saturate or report failure when
// handed instants in the wrong order rather than producing negative spans.
type Instant struct {
	t Timestamp
}

// Now returns the current reading of the monotonic clock.
//
// Panics if the clock read fails at the OS level. On a correctly configured
// system reading the monotonic clock cannot fail; a failure here means the
// environment is broken in a way no caller can reasonably recover from.
func Now() Instant {
	ts, err := ReadClock(ClockMonotonic)
	if err != nil {
		panic(err)
	}

	return Instant{t: ts}
}

// DurationSince returns the span from earlier to i, or the zero span if
// earlier is in fact later than i.
func (i Instant) DurationSince(earlier Instant) Duration {
	d, _ := i.CheckedDurationSince(earlier)
	return d
}

// SaturatingDurationSince returns the span from earlier to i, or the zero
// span if earlier is in fact later than i.
func (i Instant) SaturatingDurationSince(earlier Instant) Duration {
	return i.DurationSince(earlier)
}

// CheckedDurationSince returns the span from earlier to i, or false if
// earlier is in fact later than i - either because the arguments were
// passed misordered or because the clock misbehaved. This is the only
// duration operation that lets a caller tell a genuinely zero span apart
// from a reversed one.
func (i Instant) CheckedDurationSince(earlier Instant) (Duration, bool) {
	d, ok := i.t.Sub(earlier.t)
	if !ok {
		return Duration{}, false
	}

	return d, true
}

// Elapsed returns the span from i to the current reading of the monotonic
// clock, or the zero span if the clock reads earlier than i.
func (i Instant) Elapsed() Duration {
	return Now().DurationSince(i)
}

// CheckedAdd returns the instant d later than i, or false when the result
// cannot be represented.
func (i Instant) CheckedAdd(d Duration) (Instant, bool) {
	t, ok := i.t.CheckedAdd(d)
	if !ok {
		return Instant{}, false
	}

	return Instant{t: t}, true
}

// CheckedSub returns the instant d earlier than i, or false when the result
// cannot be represented.
func (i Instant) CheckedSub(d Duration) (Instant, bool) {
	t, ok := i.t.CheckedSub(d)
	if !ok {
		return Instant{}, false
	}

	return Instant{t: t}, true
}

// Add returns the instant d later than i.
//
// Panics when the result cannot be represented. Shifting a point in time
// out of range is a programming error, unlike a reversed measurement, so
// this does not saturate; use CheckedAdd to handle the failure instead.
func (i Instant) Add(d Duration) Instant {
	out, ok := i.CheckedAdd(d)
	if !ok {
		panic("tempo: overflow when adding duration to instant")
	}

	return out
}

// Sub returns the instant d earlier than i.
//
// Panics when the result cannot be represented; use CheckedSub to handle
// the failure instead.
func (i Instant) Sub(d Duration) Instant {
	out, ok := i.CheckedSub(d)
	if !ok {
		panic("tempo: overflow when subtracting duration from instant")
	}

	return out
}

// Before reports whether i was taken strictly earlier than other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// After reports whether i was taken strictly later than other.
func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

// Cmp compares two instants, returning -1 when i is earlier than other,
// 0 when equal and 1 when later.
func (i Instant) Cmp(other Instant) int {
	return i.t.Cmp(other.t)
}

func (i Instant) String() string {
	return fmt.Sprintf("Instant(%d, %d)", i.t.secs, i.t.nsecs)
}
