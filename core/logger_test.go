package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(enabled bool) (*Logger, *observer.ObservedLogs) {
	obs, logs := observer.New(zapcore.DebugLevel)
	return NewLoggerFromZap(zap.New(obs), enabled), logs
}

func TestLoggerEnabled(t *testing.T) {
	l, logs := observed(true)
	assert.True(t, l.Enabled())

	l.Debug("debug %d", 1)
	l.Info("info %s", "x")
	l.Warn("warn")
	l.Error("error")

	entries := logs.All()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, "debug 1", entries[0].Message)
		assert.Equal(t, "info x", entries[1].Message)
		assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
		assert.Equal(t, "chimemessaging-go", entries[0].LoggerName)
	}
}

func TestLoggerDisabled(t *testing.T) {
	l, logs := observed(false)

	l.Debug("hidden")
	l.Info("hidden")
	l.Page("ListChannels", 1, 10, true)
	l.Validation("CreateChannelInput", nil)
	l.Warn("shown")

	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestLoggerPage(t *testing.T) {
	l, logs := observed(true)
	l.Page("ListChannels", 2, 50, false)

	entries := logs.FilterMessage("page fetched").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "ListChannels", fields["operation"])
		assert.EqualValues(t, 2, fields["page"])
		assert.EqualValues(t, 50, fields["items"])
		assert.Equal(t, false, fields["hasNext"])
	}
}

func TestLoggerValidation(t *testing.T) {
	l, logs := observed(true)
	l.Validation("CreateChannelInput", nil)
	l.Validation("CreateChannelInput", errors.New("bad"))

	assert.Equal(t, 1, logs.FilterMessage("validation passed").Len())
	assert.Equal(t, 1, logs.FilterMessage("validation failed").Len())
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.False(t, l.Enabled())
	l.Warn("nothing")
	l.Page("ListChannels", 1, 1, false)
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	assert.False(t, l.Enabled())
	assert.NotPanics(t, func() {
		l.Debug("d %d", 1)
		l.Info("i")
		l.Warn("w")
		l.Error("e")
		l.Page("ListChannels", 1, 2, true)
		l.Validation("CreateChannelInput", errors.New("bad"))
	})
	assert.NoError(t, l.Sync())
}
