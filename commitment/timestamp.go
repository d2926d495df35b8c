package commitment

import "time"

// Timestamp is a point in time measured in seconds since the Unix epoch.
// It is uint64 internally so it can be compared and serialized cheaply, and so
// term boundaries are unambiguous across platforms.
type Timestamp uint64

// Time converts the timestamp back into a time.Time for logging and display.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// TimeSource supplies the current time to the engine. The engine never reads
// the system clock directly; the caller injects a source so that the window
// predicates are deterministic under test and the launcher can drive a
// simulated clock.
type TimeSource func() Timestamp

// SystemTime is the wall-clock TimeSource used by the launcher in real runs.
func SystemTime() Timestamp {
	return Timestamp(time.Now().Unix())
}
