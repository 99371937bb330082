package internal

import (
	"testing"

	"golang.org/x/sys/unix"
)

// stubState swaps the memoized shortcut and the syscall readers for the
// duration of a test, restoring the real ones afterwards.
func stubState(t *testing.T, shortcut readFunc, syscall func(int32, *unix.Timespec) error) {
	t.Helper()

	var (
		oldState = shortcutState.Load()
		oldRead  = readSyscall
	)

	t.Cleanup(func() {
		shortcutState.Store(oldState)
		readSyscall = oldRead
	})

	if shortcut == nil {
		shortcutState.Store(&noShortcut)
	} else {
		shortcutState.Store(&shortcut)
	}

	if syscall != nil {
		readSyscall = syscall
	}
}

func fixedReader(secs int64, nsecs uint32) func(int32, *unix.Timespec) error {
	return func(_ int32, ts *unix.Timespec) error {
		*ts = makeTimespec(secs, nsecs)
		return nil
	}
}

func TestGettime_RealClock(t *testing.T) {
	ts, err := Gettime(unix.CLOCK_REALTIME)
	if err != nil {
		t.Fatal(err)
	}

	sec, nsec := ts.Unix()
	if sec <= 0 {
		t.Errorf("expected a positive epoch offset, got [%d]", sec)
	}
	if nsec < 0 || nsec >= 1_000_000_000 {
		t.Errorf("expected normalized nanoseconds, got [%d]", nsec)
	}
}

func TestGettime_ShortcutServes(t *testing.T) {
	stubState(t, fixedReader(12345, 678), func(int32, *unix.Timespec) error {
		t.Error("full transition taken despite the shortcut serving the clock")
		return unix.EINVAL
	})

	ts, err := Gettime(unix.CLOCK_REALTIME)
	if err != nil {
		t.Fatal(err)
	}

	if sec, nsec := ts.Unix(); sec != 12345 || nsec != 678 {
		t.Errorf("expected [12345 678], got [%d %d]", sec, nsec)
	}
}

func TestGettime_FallsBackOnENOSYSOnly(t *testing.T) {
	shortcut := func(int32, *unix.Timespec) error {
		return unix.ENOSYS
	}

	stubState(t, shortcut, fixedReader(12345, 678))

	ts, err := Gettime(unix.CLOCK_MONOTONIC)
	if err != nil {
		t.Fatal(err)
	}

	if sec, nsec := ts.Unix(); sec != 12345 || nsec != 678 {
		t.Errorf("expected the fallback reading [12345 678], got [%d %d]", sec, nsec)
	}

	// The memoized shortcut survives a per-call fallback.
	if p := shortcutState.Load(); p == nil || *p == nil {
		t.Error("shortcut pointer was invalidated by an ENOSYS fallback")
	}
}

func TestGettime_ShortcutErrorSurfacesVerbatim(t *testing.T) {
	shortcut := func(int32, *unix.Timespec) error {
		return unix.EINVAL
	}

	stubState(t, shortcut, func(int32, *unix.Timespec) error {
		t.Error("non-ENOSYS shortcut failure must not fall back")
		return nil
	})

	if _, err := Gettime(unix.CLOCK_MONOTONIC); err != unix.EINVAL {
		t.Errorf("expected [EINVAL], got [%v]", err)
	}
}

func TestGettime_WithoutShortcut(t *testing.T) {
	stubState(t, nil, fixedReader(99, 1))

	ts, err := Gettime(unix.CLOCK_MONOTONIC)
	if err != nil {
		t.Fatal(err)
	}

	if sec, nsec := ts.Unix(); sec != 99 || nsec != 1 {
		t.Errorf("expected [99 1], got [%d %d]", sec, nsec)
	}

	stubState(t, nil, func(int32, *unix.Timespec) error {
		return unix.EINVAL
	})

	if _, err := Gettime(unix.CLOCK_MONOTONIC); err != unix.EINVAL {
		t.Errorf("expected [EINVAL], got [%v]", err)
	}
}

func TestShortcut_ResolvedOnce(t *testing.T) {
	old := shortcutState.Load()
	t.Cleanup(func() {
		shortcutState.Store(old)
	})

	// Force re-resolution and ensure the state leaves "unresolved" after
	// a single read, whichever of the two terminal states it lands in.
	shortcutState.Store(nil)
	first := shortcut()

	if shortcutState.Load() == nil {
		t.Fatal("shortcut state still unresolved after a read")
	}

	second := shortcut()
	if (first == nil) != (second == nil) {
		t.Error("shortcut resolution is not stable across calls")
	}
}

func TestSettime_MarshalsTimespec(t *testing.T) {
	var (
		oldWrite = writeSyscall
		got      unix.Timespec
	)

	t.Cleanup(func() {
		writeSyscall = oldWrite
	})

	writeSyscall = func(ts *unix.Timespec) error {
		got = *ts
		return nil
	}

	if err := Settime(5, 500_000_000); err != nil {
		t.Fatal(err)
	}

	if sec, nsec := got.Unix(); sec != 5 || nsec != 500_000_000 {
		t.Errorf("expected [5 500000000], got [%d %d]", sec, nsec)
	}

	writeSyscall = func(*unix.Timespec) error {
		return unix.EPERM
	}

	if err := Settime(0, 0); err != unix.EPERM {
		t.Errorf("expected [EPERM], got [%v]", err)
	}
}
