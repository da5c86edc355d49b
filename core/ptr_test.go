package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerHelpers(t *testing.T) {
	assert.Equal(t, "x", ToString(String("x")))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, int32(7), ToInt32(Int32(7)))
	assert.Equal(t, int32(0), ToInt32(nil))
	assert.True(t, ToBool(Bool(true)))
	assert.False(t, ToBool(nil))

	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.True(t, ToTime(Time(at)).Equal(at))
	assert.True(t, ToTime(nil).IsZero())

	assert.Equal(t, []string{"a", "b"}, StringSlice("a", "b"))
}

func TestNewClientRequestToken(t *testing.T) {
	a, b := NewClientRequestToken(), NewClientRequestToken()
	assert.NotEqual(t, a, b)
	for _, tok := range []string{a, b} {
		_, err := uuid.Parse(tok)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(tok), 2)
		assert.LessOrEqual(t, len(tok), 64)
	}
}
