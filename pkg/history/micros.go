package history

import "time"

// NowMicros returns the current time as microseconds since epoch, UTC.
// All persisted timestamps use this representation.
func NowMicros() int64 {
	return time.Now().UTC().UnixMicro()
}

// MicrosToTime converts a microsecond timestamp back to time.Time (UTC).
func MicrosToTime(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}

// DurationMs returns the elapsed milliseconds between two microsecond
// timestamps.
func DurationMs(startUs, endUs int64) int {
	return int((endUs - startUs) / 1000)
}
