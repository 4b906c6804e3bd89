package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "s", Value: "v"}, String("s", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "f", Value: 2.5}, Float64("f", 2.5))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))

	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
}

func TestZapLogger_EmitsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core)

	log.Info("bond scan complete", Int("bonds", 12), String("title", "water"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bond scan complete", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.EqualValues(t, 12, fields["bonds"])
	assert.Equal(t, "water", fields["title"])
}

func TestZapLogger_WithAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewLoggerFromCore(core).Named("nci").With(String("detector", "hydrogen_bond"))

	log.Debug("pair rejected")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "nci", entries[0].LoggerName)
	assert.Equal(t, "hydrogen_bond", entries[0].ContextMap()["detector"])
}

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestNopLoggerAndDefault(t *testing.T) {
	nop := NewNopLogger()
	nop.Info("discarded")
	assert.Equal(t, nop, nop.With(String("k", "v")))

	SetDefault(nop)
	assert.Equal(t, nop, Default())
	SetDefault(nil) // ignored
	assert.Equal(t, nop, Default())
}
