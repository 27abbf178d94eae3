package models

import "time"

// TimestampFormat is the second-precision format used for the string
// timestamp columns (completed_at, evidence created_at).
const TimestampFormat = "2006-01-02T15:04:05"

// Now returns the current time in TimestampFormat.
func Now() string {
	return time.Now().Format(TimestampFormat)
}
