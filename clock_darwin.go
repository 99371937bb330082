//go:build darwin

package tempo

import "golang.org/x/sys/unix"

// The Darwin clock table. Ids and semantics per the XNU clock_gettime.
const (
	// ClockRealtime is the settable system-wide wall clock, counting from
	// the Unix epoch; the same value gettimeofday(2) reports.
	ClockRealtime = ClockKind(unix.CLOCK_REALTIME)

	// ClockMonotonic counts from an arbitrary point and keeps advancing
	// while the system sleeps, unaffected by frequency or time
	// adjustments.
	ClockMonotonic = ClockKind(unix.CLOCK_MONOTONIC)

	// ClockMonotonicRaw is monotonic time free of any adjustment, not
	// comparable to other time sources.
	ClockMonotonicRaw = ClockKind(unix.CLOCK_MONOTONIC_RAW)

	// ClockMonotonicRawApprox is ClockMonotonicRaw read from a value the
	// system caches at context switch - faster, but possibly milliseconds
	// stale.
	ClockMonotonicRawApprox = ClockKind(unix.CLOCK_MONOTONIC_RAW_APPROX)

	// ClockUptimeRaw advances like ClockMonotonicRaw but stops while the
	// system sleeps; matches mach_absolute_time after timebase
	// conversion.
	ClockUptimeRaw = ClockKind(unix.CLOCK_UPTIME_RAW)

	// ClockUptimeRawApprox is the context-switch-cached ClockUptimeRaw.
	ClockUptimeRawApprox = ClockKind(unix.CLOCK_UPTIME_RAW_APPROX)

	// ClockProcessCPUTime measures CPU time consumed by this process.
	ClockProcessCPUTime = ClockKind(unix.CLOCK_PROCESS_CPUTIME_ID)

	// ClockThreadCPUTime measures CPU time consumed by the calling thread.
	ClockThreadCPUTime = ClockKind(unix.CLOCK_THREAD_CPUTIME_ID)
)

var supportedClocks = []ClockKind{
	ClockRealtime,
	ClockMonotonic,
	ClockMonotonicRaw,
	ClockMonotonicRawApprox,
	ClockUptimeRaw,
	ClockUptimeRawApprox,
	ClockProcessCPUTime,
	ClockThreadCPUTime,
}

var clockNames = map[ClockKind]string{
	ClockRealtime:           "realtime",
	ClockMonotonic:          "monotonic",
	ClockMonotonicRaw:       "monotonic-raw",
	ClockMonotonicRawApprox: "monotonic-raw-approx",
	ClockUptimeRaw:          "uptime-raw",
	ClockUptimeRawApprox:    "uptime-raw-approx",
	ClockProcessCPUTime:     "process-cputime",
	ClockThreadCPUTime:      "thread-cputime",
}
