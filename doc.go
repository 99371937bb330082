// Package tempo provides monotonic and wall-clock time measurement built
// directly on the kernel's clock interface.
//
// The package revolves around two opaque handles: Instant, a reading of
// the monotonic clock useful only relative to other Instants, and
// SystemTime, a wall-clock reading anchored to the Unix epoch. Both wrap a
// fixed-point Timestamp of whole seconds plus sub-second nanoseconds, and
// all arithmetic between them is checked or saturating - a point in time
// never silently wraps, and a measurement between two points never goes
// negative.
//
// Reads are serviced through a process-wide fast path where the platform
// provides one, falling back to a full clock_gettime kernel transition
// otherwise. Exotic clocks (CPU time, coarse, boot-time and friends) are
// reachable through ReadClock with the per-platform ClockKind tables.
package tempo
