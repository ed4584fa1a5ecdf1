package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(t *testing.T) (Logger, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	return NewZapAdapter(zap.New(core)), logs
}

func TestLoggerConstructors(t *testing.T) {
	// Every constructor must yield a usable Logger; none may panic on a
	// plain call.
	for name, log := range map[string]Logger{
		"structured": NewStructured("debug", "json"),
		"adapter":    NewZapAdapter(New("info", "console")),
		"test":       NewTestLogger(t),
		"noop":       NewNoOpLogger(),
	} {
		t.Run(name, func(t *testing.T) {
			log.Info("constructor works", map[string]interface{}{"kind": name})
			log.WithFields(map[string]interface{}{"component": "test"}).Debug("chained", nil)
		})
	}
}

func TestLogger_WithFieldsPropagates(t *testing.T) {
	log, logs := newObservedLogger(t)

	log.WithFields(map[string]interface{}{"component": "ratios"}).
		Warn("limit breached", map[string]interface{}{"ratio": "DSR"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "limit breached", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "ratios", fields["component"])
	assert.Equal(t, "DSR", fields["ratio"])
}

func TestLogger_WithErrorAttachesError(t *testing.T) {
	log, logs := newObservedLogger(t)

	log.WithError(errors.New("redis down")).Error("cache unavailable", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "redis down", logs.All()[0].ContextMap()["error"])
}
