package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapLogger(zap.New(core))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.With("order", "ORD-1").Info(ctx, "placed", "total", 20.5)
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err")

	require.Equal(t, 4, logs.Len())
	entries := logs.All()
	assert.Equal(t, "dbg", entries[0].Message)
	assert.Equal(t, int64(1), entries[0].ContextMap()["a"])
	assert.Equal(t, "ORD-1", entries[1].ContextMap()["order"])
	assert.Equal(t, 20.5, entries[1].ContextMap()["total"])
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func TestNewZapProductionLogger_BadLevel(t *testing.T) {
	_, err := NewZapProductionLogger("loud")
	require.Error(t, err)
}
