package utils

import "time"

// TimeLayout is the timestamp format used in report output. It matches the
// directory-export convention rather than RFC 3339 so the report reads like
// the source tooling's own output.
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders a nullable timestamp for tabular output. Nil renders as
// an empty string, never as a zero time.
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(TimeLayout)
}

// FormatBool renders a boolean for tabular output ("True"/"False", matching
// the directory-export convention).
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
