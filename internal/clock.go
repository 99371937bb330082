// Package internal implements the clock source layer: it turns a native
// clock id into a raw kernel timespec, routing reads through a user-space
// shortcut where the platform provides one and through a full kernel
// transition everywhere else.
package internal

import (
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// readFunc reads the clock identified by clockid into ts.
type readFunc func(clockid int32, ts *unix.Timespec) error

// shortcutState memoizes the process-wide fast-path reader. It holds one
// of three values: nil while unresolved, &noShortcut once resolution found
// nothing, or a pointer to the resolved reader. The state is written
// effectively once per process; racing resolvers all compute the identical
// answer, so plain load-then-store needs no further coordination.
var shortcutState atomic.Pointer[readFunc]

// noShortcut is the "resolved, none available" sentinel. Its value stays
// nil; only its address matters.
var noShortcut readFunc

// readSyscall performs the full kernel transition. A variable so tests can
// substitute deterministic and failing clocks.
var readSyscall = unix.ClockGettime

func shortcut() readFunc {
	if p := shortcutState.Load(); p != nil {
		return *p
	}

	fn := resolveShortcut()
	if fn == nil {
		shortcutState.Store(&noShortcut)
		return nil
	}

	shortcutState.Store(&fn)

	return fn
}

// Gettime returns the current reading of the clock identified by clockid.
//
// The shortcut is consulted first when present. If it reports ENOSYS the
// clock id is outside what it can service and the read falls back to the
// full kernel transition for this call only - the memoized shortcut stays
// valid for other ids. Every other error, from either path, is returned
// verbatim with no retry.
func Gettime(clockid int32) (unix.Timespec, error) {
	var ts unix.Timespec

	if fn := shortcut(); fn != nil {
		if err := fn(clockid, &ts); err != unix.ENOSYS {
			return ts, err
		}
	}

	if err := readSyscall(clockid, &ts); err != nil {
		return unix.Timespec{}, err
	}

	return ts, nil
}

// writeSyscall performs the clock write. A variable for the same reason
// as readSyscall.
var writeSyscall = settime

// Settime sets the system's realtime clock to the given offset from the
// Unix epoch. Requires privilege; the errno is returned verbatim.
func Settime(secs int64, nsecs uint32) error {
	ts := makeTimespec(secs, nsecs)

	return writeSyscall(&ts)
}
