package core

import (
	"encoding/json"
	"fmt"
)

// Enum is implemented by every closed string set in the types package.
type Enum interface {
	IsKnown() bool
	EnumName() string
}

// ParseEnum converts a raw wire string into one of values.
// Matching is exact and case-sensitive; empty or unknown input fails.
func ParseEnum[T ~string](field, raw string, values []T) (T, error) {
	for _, v := range values {
		if string(v) == raw && raw != "" {
			return v, nil
		}
	}
	var zero T
	return zero, NewInvalidValueError(field, raw, EnumStrings(values))
}

// EnumStrings returns the wire strings of values, in order.
func EnumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// UnmarshalEnum decodes a JSON string into one of values.
// A JSON null leaves the value unset.
func UnmarshalEnum[T ~string](field string, b []byte, values []T) (T, error) {
	if string(b) == "null" {
		var zero T
		return zero, nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", field, err)
	}
	return ParseEnum(field, raw, values)
}
