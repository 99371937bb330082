//go:build darwin

package internal

import "golang.org/x/sys/unix"

// Darwin exposes no clock_settime; the realtime clock is stepped through
// settimeofday at microsecond granularity.
func settime(ts *unix.Timespec) error {
	sec, nsec := ts.Unix()
	tv := unix.Timeval{Sec: sec, Usec: int32(nsec / 1000)}

	return unix.Settimeofday(&tv)
}
