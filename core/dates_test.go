package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsISODateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		// Date-only strings
		{"date only", "2024-01-15", true},
		{"date only end of year", "2024-12-31", true},

		// Date-time strings
		{"datetime without timezone", "2024-01-15T10:30:00", true},
		{"datetime with Z", "2024-01-15T10:30:00Z", true},
		{"datetime with milliseconds", "2024-01-15T10:30:00.000Z", true},
		{"datetime with 3 digit ms", "2024-01-15T10:30:00.123Z", true},

		// Date-time with timezone offset
		{"datetime with +00:00", "2024-01-15T10:30:00+00:00", true},
		{"datetime with -05:00", "2024-01-15T10:30:00-05:00", true},
		{"datetime with +0530 no colon", "2024-01-15T10:30:00+0530", true},

		// Non-date strings
		{"plain text", "hello world", false},
		{"year only", "2024", false},
		{"year-month only", "2024-01", false},
		{"US date format", "01-15-2024", false},
		{"empty string", "", false},
		{"number string", "12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsISODateString(tt.input)
			if result != tt.expected {
				t.Errorf("IsISODateString(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			if result {
				_, err := ParseISODate(tt.input)
				assert.NoError(t, err, "recognised date must parse")
			}
		})
	}
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		checkYear   int
		checkMonth  time.Month
		checkDay    int
	}{
		{"date only", "2024-01-15", false, 2024, time.January, 15},
		{"datetime with Z", "2024-01-15T10:30:00Z", false, 2024, time.January, 15},
		{"datetime with milliseconds", "2024-01-15T10:30:00.000Z", false, 2024, time.January, 15},
		{"datetime RFC3339", "2024-03-20T14:45:00+00:00", false, 2024, time.March, 20},
		{"offset without colon", "2024-03-20T14:45:00+0530", false, 2024, time.March, 20},
		{"fraction and offset without colon", "2024-03-20T14:45:00.250-0700", false, 2024, time.March, 20},
		{"invalid date", "not-a-date", true, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseISODate(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseISODate(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseISODate(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.Year() != tt.checkYear {
				t.Errorf("ParseISODate(%q) year = %d, want %d", tt.input, result.Year(), tt.checkYear)
			}
			if result.Month() != tt.checkMonth {
				t.Errorf("ParseISODate(%q) month = %v, want %v", tt.input, result.Month(), tt.checkMonth)
			}
			if result.Day() != tt.checkDay {
				t.Errorf("ParseISODate(%q) day = %d, want %d", tt.input, result.Day(), tt.checkDay)
			}
		})
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC))
	assert.Equal(t, 123*time.Millisecond, time.Duration(ts.Nanosecond()), "truncated to milliseconds")

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1705314600.123", string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(ts.Time))
	assert.Equal(t, time.UTC, back.Location())
}

func TestTimestampUnmarshal(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"integer seconds", `1705314600`, false},
		{"fractional seconds", `1705314600.000`, false},
		{"ISO string", `"2024-01-15T10:30:00Z"`, false},
		{"ISO with offset", `"2024-01-15T11:30:00+01:00"`, false},
		{"ISO with offset without colon", `"2024-01-15T16:00:00+0530"`, false},
		{"garbage string", `"yesterday"`, true},
		{"boolean", `true`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, ts.Equal(want), "got %s", ts)
		})
	}

	t.Run("null leaves pointer nil", func(t *testing.T) {
		var v struct {
			When *Timestamp `json:"When"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"When":null}`), &v))
		assert.Nil(t, v.When)
	})
}

func TestTimestampString(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 20, 14, 45, 0, 5_000_000, time.FixedZone("EST", -5*3600)))
	assert.Equal(t, "2024-03-20T19:45:00.005Z", ts.String())
	assert.InDelta(t, 1710963900.005, ts.EpochSeconds(), 1e-6)
}
