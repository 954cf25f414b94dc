// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromMillisUTC converts a Unix millisecond timestamp to a UTC time.
func FromMillisUTC(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatRFC3339 renders a time in RFC 3339, the wire format used by every
// API envelope and entity timestamp.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
