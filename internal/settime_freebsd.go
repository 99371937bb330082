//go:build freebsd

package internal

import "golang.org/x/sys/unix"

// x/sys exposes no clock_settime wrapper on FreeBSD; the realtime clock is
// stepped through settimeofday at microsecond granularity.
func settime(ts *unix.Timespec) error {
	sec, nsec := ts.Unix()
	tv := unix.Timeval{Sec: sec, Usec: nsec / 1000}

	return unix.Settimeofday(&tv)
}
