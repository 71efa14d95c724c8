package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLogger_LevelFallback(t *testing.T) {
	l, err := NewZapLogger("nonsense")
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZap(zap.New(core))

	child := l.With("component", "gateway")
	child.Info("request finished", "status", 200)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "request finished", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "gateway", fields["component"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestZapLogger_DebugFilteredAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZap(zap.New(core))

	l.Debug("hidden")
	l.Warn("shown")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "shown", logs.All()[0].Message)
}
