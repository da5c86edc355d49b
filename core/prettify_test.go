package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type prettyInner struct {
	Key   *string `json:"Key,omitempty"`
	Value *string `json:"Value,omitempty" sensitive:"true"`
}

type prettyShape struct {
	Name    *string                `json:"Name,omitempty"`
	Secret  *string                `json:"Secret,omitempty" sensitive:"true"`
	Count   *int32                 `json:"Count,omitempty"`
	Flag    *bool                  `json:"Flag,omitempty"`
	Color   testColor              `json:"Color,omitempty"`
	When    *Timestamp             `json:"When,omitempty"`
	Tags    []prettyInner          `json:"Tags,omitempty"`
	Attrs   map[string]prettyInner `json:"Attrs,omitempty"`
	Members []string               `json:"Members,omitempty"`
}

func TestPrettify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"empty shape", prettyShape{}, "{}"},
		{"nil pointer", (*prettyShape)(nil), "<nil>"},
		{"scalars", prettyShape{Name: String("general"), Count: Int32(3), Flag: Bool(false), Color: testColorRed},
			`{Name: "general", Count: 3, Flag: false, Color: "RED"}`},
		{"sensitive redacted", prettyShape{Secret: String("hunter2")},
			`{Secret: *** Sensitive Data Redacted ***}`},
		{"timestamp", prettyShape{When: NewTimestamp(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))},
			`{When: 2024-01-15T10:30:00.000Z}`},
		{"nested list", prettyShape{Tags: []prettyInner{{Key: String("team"), Value: String("a")}}},
			`{Tags: [{Key: "team", Value: *** Sensitive Data Redacted ***}]}`},
		{"empty list kept", prettyShape{Members: []string{}}, `{Members: []}`},
		{"map keys sorted", prettyShape{Attrs: map[string]prettyInner{"b": {}, "a": {Key: String("k")}}},
			`{Attrs: {"a": {Key: "k"}, "b": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prettify(tt.in))
		})
	}
}

func TestPrettifyDeterministic(t *testing.T) {
	s := prettyShape{Attrs: map[string]prettyInner{}}
	for _, k := range []string{"z", "m", "a", "q", "c"} {
		s.Attrs[k] = prettyInner{Key: String(k)}
	}
	first := Prettify(s)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Prettify(s))
	}
}
