package core

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ISO date pattern matches: 2024-01-15, 2024-01-15T10:30:00, 2024-01-15T10:30:00.000Z, etc.
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d{1,9})?(Z|[+-]\d{2}:?\d{2})?)?$`)

// IsISODateString checks if a string looks like an ISO 8601 date.
func IsISODateString(value string) bool {
	return isoDatePattern.MatchString(value)
}

// ParseISODate parses an ISO 8601 date string to time.Time.
func ParseISODate(value string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{Value: value, Message: "not a valid ISO 8601 date"}
}

// Timestamp is a service timestamp. On the wire it is a number of seconds
// since the Unix epoch with millisecond precision.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a Timestamp truncated to millisecond precision, in UTC.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: time.UnixMilli(t.UnixMilli()).UTC()}
}

// EpochSeconds returns the timestamp as fractional epoch seconds.
func (t Timestamp) EpochSeconds() float64 {
	return float64(t.UnixMilli()) / 1000
}

// MarshalJSON renders the timestamp as epoch seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(t.EpochSeconds(), 'f', -1, 64)), nil
}

// UnmarshalJSON accepts epoch seconds or an ISO 8601 string.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		parsed, err := ParseISODate(s)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		t.Time = parsed.UTC()
		return nil
	}
	secs, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = time.UnixMilli(int64(math.Round(secs * 1000))).UTC()
	return nil
}

// String renders the timestamp in RFC 3339 with milliseconds.
func (t Timestamp) String() string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
