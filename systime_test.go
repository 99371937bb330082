package tempo

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemTime_EpochSelfDifference(t *testing.T) {
	d, err := UnixEpoch.DurationSince(UnixEpoch)

	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestSystemTime_DurationSince(t *testing.T) {
	var (
		earlier = SystemTimeOf(3, 800_000_000)
		later   = SystemTimeOf(5, 500_000_000)
		span    = NewDuration(1, 700_000_000)
	)

	d, err := later.DurationSince(earlier)
	require.NoError(t, err)
	assert.Equal(t, span, d)

	// Wall clocks go backwards; the failure carries the reverse magnitude
	// so the caller can decide what the jump means.
	_, err = earlier.DurationSince(later)
	require.Error(t, err)

	var drift *DriftError
	require.True(t, errors.As(err, &drift))
	assert.Equal(t, span, drift.Magnitude)
}

func TestSystemTime_Elapsed(t *testing.T) {
	// Anchored a comfortable margin in the past, so even a stepped clock
	// will not turn this into a drift failure in practice.
	start := SystemTimeOf(time.Now().Unix()-3600, 0)

	d, err := start.Elapsed()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, d.Cmp(NewDuration(3500, 0)), 0)
}

func TestSystemTime_NowTracksWallClock(t *testing.T) {
	now := SystemNow()
	std := time.Now()

	diff := now.Timestamp().Secs() - std.Unix()
	if diff < -2 || diff > 2 {
		t.Errorf("expected wall clock within 2s of time.Now, got a gap of [%d]s", diff)
	}
}

func TestSystemTime_CheckedArithmetic(t *testing.T) {
	st := SystemTimeOf(100, 900_000_000)

	out, ok := st.CheckedAdd(NewDuration(1, 200_000_000))
	assert.True(t, ok)
	assert.Equal(t, SystemTimeOf(102, 100_000_000), out)

	back, ok := out.CheckedSub(NewDuration(1, 200_000_000))
	assert.True(t, ok)
	assert.Equal(t, st, back)

	_, ok = st.CheckedAdd(NewDuration(math.MaxUint64, 0))
	assert.False(t, ok)

	assert.Panics(t, func() {
		SystemTimeOf(math.MaxInt64, 0).Add(NewDuration(1, 0))
	})

	assert.Panics(t, func() {
		UnixEpoch.Sub(NewDuration(math.MaxUint64, 0))
	})
}

func TestSystemTime_Ordering(t *testing.T) {
	var (
		a = SystemTimeOf(1, 0)
		b = SystemTimeOf(1, 1)
	)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 1, b.Cmp(a))
	assert.True(t, UnixEpoch.Before(a))
}
