package tempo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestReadClock_Monotonic(t *testing.T) {
	first, err := ReadClock(ClockMonotonic)
	require.NoError(t, err)

	second, err := ReadClock(ClockMonotonic)
	require.NoError(t, err)

	if second.Before(first) {
		t.Errorf("expected monotonic readings to be nondecreasing, got [%v] before [%v]", second, first)
	}
}

func TestReadClock_SupportedSet(t *testing.T) {
	clocks := Supported()
	require.NotEmpty(t, clocks)

	// Every platform table carries at least the two core clocks; each
	// listed clock must be readable on the machine the tests run on.
	assert.Contains(t, clocks, ClockRealtime)
	assert.Contains(t, clocks, ClockMonotonic)

	for _, kind := range []ClockKind{ClockRealtime, ClockMonotonic, ClockProcessCPUTime, ClockThreadCPUTime} {
		if _, err := ReadClock(kind); err != nil {
			t.Errorf("expected %v to be readable, got [%v]", kind, err)
		}
	}
}

func TestClockKind_Names(t *testing.T) {
	for _, kind := range Supported() {
		name := kind.String()
		require.NotEmpty(t, name)

		back, ok := LookupClock(name)
		assert.True(t, ok, name)
		assert.Equal(t, kind, back)
	}

	_, ok := LookupClock("no-such-clock")
	assert.False(t, ok)

	assert.Equal(t, "clock(-1)", ClockKind(-1).String())
}

func TestClockError_WrapsErrno(t *testing.T) {
	err := &ClockError{Clock: ClockMonotonic, Op: "read", Err: unix.EINVAL}

	assert.Contains(t, err.Error(), "monotonic")
	assert.Contains(t, err.Error(), "read")
	assert.True(t, errors.Is(err, unix.EINVAL))

	var errno unix.Errno
	require.True(t, errors.As(err, &errno))
	assert.Equal(t, unix.EINVAL, errno)
}
