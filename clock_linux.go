//go:build linux

package tempo

import "golang.org/x/sys/unix"

// The Linux clock table. Ids and semantics per clock_gettime(2).
const (
	// ClockRealtime is the settable system-wide wall clock, counting from
	// the Unix epoch. It jumps when the administrator steps the time and
	// slews under NTP adjustment.
	ClockRealtime = ClockKind(unix.CLOCK_REALTIME)

	// ClockMonotonic counts from an unspecified point in the past (boot,
	// on Linux) and never goes backwards, though it slews under NTP
	// adjustment and stops while the system is suspended.
	ClockMonotonic = ClockKind(unix.CLOCK_MONOTONIC)

	// ClockProcessCPUTime measures CPU time consumed by all threads of
	// this process.
	ClockProcessCPUTime = ClockKind(unix.CLOCK_PROCESS_CPUTIME_ID)

	// ClockThreadCPUTime measures CPU time consumed by the calling thread.
	ClockThreadCPUTime = ClockKind(unix.CLOCK_THREAD_CPUTIME_ID)

	// ClockMonotonicRaw is ClockMonotonic without NTP slewing - raw
	// hardware time.
	ClockMonotonicRaw = ClockKind(unix.CLOCK_MONOTONIC_RAW)

	// ClockRealtimeCoarse is a faster, tick-granularity ClockRealtime.
	ClockRealtimeCoarse = ClockKind(unix.CLOCK_REALTIME_COARSE)

	// ClockMonotonicCoarse is a faster, tick-granularity ClockMonotonic.
	ClockMonotonicCoarse = ClockKind(unix.CLOCK_MONOTONIC_COARSE)

	// ClockBoottime is ClockMonotonic plus any time the system spent
	// suspended.
	ClockBoottime = ClockKind(unix.CLOCK_BOOTTIME)

	// ClockRealtimeAlarm is ClockRealtime as seen by timer_create(2)
	// alarm timers; not settable.
	ClockRealtimeAlarm = ClockKind(unix.CLOCK_REALTIME_ALARM)

	// ClockBoottimeAlarm is ClockBoottime as seen by timer_create(2)
	// alarm timers.
	ClockBoottimeAlarm = ClockKind(unix.CLOCK_BOOTTIME_ALARM)

	// ClockTAI is wall-clock time on the International Atomic Time scale,
	// free of leap-second discontinuities.
	ClockTAI = ClockKind(unix.CLOCK_TAI)
)

var supportedClocks = []ClockKind{
	ClockRealtime,
	ClockMonotonic,
	ClockProcessCPUTime,
	ClockThreadCPUTime,
	ClockMonotonicRaw,
	ClockRealtimeCoarse,
	ClockMonotonicCoarse,
	ClockBoottime,
	ClockRealtimeAlarm,
	ClockBoottimeAlarm,
	ClockTAI,
}

var clockNames = map[ClockKind]string{
	ClockRealtime:        "realtime",
	ClockMonotonic:       "monotonic",
	ClockProcessCPUTime:  "process-cputime",
	ClockThreadCPUTime:   "thread-cputime",
	ClockMonotonicRaw:    "monotonic-raw",
	ClockRealtimeCoarse:  "realtime-coarse",
	ClockMonotonicCoarse: "monotonic-coarse",
	ClockBoottime:        "boottime",
	ClockRealtimeAlarm:   "realtime-alarm",
	ClockBoottimeAlarm:   "boottime-alarm",
	ClockTAI:             "tai",
}
