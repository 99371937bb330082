//go:build freebsd

package tempo

import "golang.org/x/sys/unix"

// The FreeBSD clock table. FreeBSD splits several clocks into a default,
// a _PRECISE variant (most exact reading) and a _FAST variant (cached at
// tick granularity); the defaults currently alias the precise forms.
const (
	// ClockRealtime is the settable system-wide wall clock, counting from
	// the Unix epoch.
	ClockRealtime = ClockKind(unix.CLOCK_REALTIME)

	// ClockRealtimePrecise is the most exact wall-clock reading.
	ClockRealtimePrecise = ClockKind(unix.CLOCK_REALTIME_PRECISE)

	// ClockRealtimeFast is the wall clock at tick granularity.
	ClockRealtimeFast = ClockKind(unix.CLOCK_REALTIME_FAST)

	// ClockMonotonic counts from an unspecified point in the past and
	// never goes backwards.
	ClockMonotonic = ClockKind(unix.CLOCK_MONOTONIC)

	// ClockMonotonicPrecise is the most exact monotonic reading.
	ClockMonotonicPrecise = ClockKind(unix.CLOCK_MONOTONIC_PRECISE)

	// ClockMonotonicFast is the monotonic clock at tick granularity.
	ClockMonotonicFast = ClockKind(unix.CLOCK_MONOTONIC_FAST)

	// ClockUptime counts seconds since boot.
	ClockUptime = ClockKind(unix.CLOCK_UPTIME)

	// ClockUptimePrecise is the most exact uptime reading.
	ClockUptimePrecise = ClockKind(unix.CLOCK_UPTIME_PRECISE)

	// ClockUptimeFast is uptime at tick granularity.
	ClockUptimeFast = ClockKind(unix.CLOCK_UPTIME_FAST)

	// ClockVirtual measures user CPU time of the calling process.
	ClockVirtual = ClockKind(unix.CLOCK_VIRTUAL)

	// ClockProf measures user plus system CPU time of the calling
	// process.
	ClockProf = ClockKind(unix.CLOCK_PROF)

	// ClockSecond returns the wall clock truncated to whole seconds.
	ClockSecond = ClockKind(unix.CLOCK_SECOND)

	// ClockProcessCPUTime measures CPU time consumed by this process.
	ClockProcessCPUTime = ClockKind(unix.CLOCK_PROCESS_CPUTIME_ID)

	// ClockThreadCPUTime measures CPU time consumed by the calling thread.
	ClockThreadCPUTime = ClockKind(unix.CLOCK_THREAD_CPUTIME_ID)
)

var supportedClocks = []ClockKind{
	ClockRealtime,
	ClockRealtimePrecise,
	ClockRealtimeFast,
	ClockMonotonic,
	ClockMonotonicPrecise,
	ClockMonotonicFast,
	ClockUptime,
	ClockUptimePrecise,
	ClockUptimeFast,
	ClockVirtual,
	ClockProf,
	ClockSecond,
	ClockProcessCPUTime,
	ClockThreadCPUTime,
}

var clockNames = map[ClockKind]string{
	ClockRealtime:         "realtime",
	ClockRealtimePrecise:  "realtime-precise",
	ClockRealtimeFast:     "realtime-fast",
	ClockMonotonic:        "monotonic",
	ClockMonotonicPrecise: "monotonic-precise",
	ClockMonotonicFast:    "monotonic-fast",
	ClockUptime:           "uptime",
	ClockUptimePrecise:    "uptime-precise",
	ClockUptimeFast:       "uptime-fast",
	ClockVirtual:          "virtual",
	ClockProf:             "prof",
	ClockSecond:           "second",
	ClockProcessCPUTime:   "process-cputime",
	ClockThreadCPUTime:    "thread-cputime",
}
