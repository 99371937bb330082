//go:build (linux || darwin || freebsd) && (amd64 || arm64 || riscv64)

package internal

import "golang.org/x/sys/unix"

// makeTimespec builds a native timespec. Constrained to 64-bit targets,
// where unix.Timespec carries int64 fields and the full seconds range is
// representable.
func makeTimespec(secs int64, nsecs uint32) unix.Timespec {
	return unix.Timespec{Sec: secs, Nsec: int64(nsecs)}
}
