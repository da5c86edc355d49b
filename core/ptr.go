package core

import "time"

// String returns a pointer to the given string.
func String(v string) *string {
	return &v
}

// ToString dereferences p, returning "" when it is nil.
func ToString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Int32 returns a pointer to the given int32.
func Int32(v int32) *int32 {
	return &v
}

// ToInt32 dereferences p, returning 0 when it is nil.
func ToInt32(p *int32) int32 {
	if p == nil {
		return 0
	}
	return *p
}

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool {
	return &v
}

// ToBool dereferences p, returning false when it is nil.
func ToBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// Time returns a Timestamp pointer for t.
func Time(t time.Time) *Timestamp {
	return NewTimestamp(t)
}

// ToTime dereferences p, returning the zero time when it is nil.
func ToTime(p *Timestamp) time.Time {
	if p == nil {
		return time.Time{}
	}
	return p.Time
}

// StringSlice returns a slice holding the given strings, in order.
func StringSlice(v ...string) []string {
	return append([]string(nil), v...)
}
