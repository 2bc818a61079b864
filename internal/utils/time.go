package utils

import "time"

// layoutTimestamp is fixed width so that lexical order equals time order.
const layoutTimestamp = "2006-01-02T15:04:05.000000"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders t as ISO-8601 UTC with microseconds and an explicit
// +00:00 offset.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(layoutTimestamp) + "+00:00"
}

// TimestampNow is FormatTimestamp(NowUTC()).
func TimestampNow() string {
	return FormatTimestamp(NowUTC())
}
