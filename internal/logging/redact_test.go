package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{"nothing sensitive", []any{"email", "a@b.c", "n", 1}, []any{"email", "a@b.c", "n", 1}},
		{"password", []any{"email", "a@b.c", "password", "hunter22"}, []any{"email", "a@b.c", "password", redacted}},
		{"case insensitive", []any{"CardNumber", "4111111111111111"}, []any{"CardNumber", redacted}},
		{"dangling key", []any{"token"}, []any{"token"}},
		{"attr", []any{slog.String("session_token", "abc")}, []any{slog.String("session_token", redacted)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redact(tt.in))
		})
	}
}

func TestRedact_DoesNotModifyInput(t *testing.T) {
	in := []any{"secret", "s3cr3t"}
	_ = redact(in)
	assert.Equal(t, "s3cr3t", in[1])
}

func TestSlogLogger_RedactsSensitiveValues(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("token", "jwt-value").Info(context.Background(), "checkout", "card", "4111111111111111")

	out := buf.String()
	assert.NotContains(t, out, "jwt-value")
	assert.NotContains(t, out, "4111111111111111")
	assert.Contains(t, out, "card="+redacted)
}

func TestZapLogger_RedactsSensitiveValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewZapLogger(zap.New(core))

	log.Warn(context.Background(), "login failed", "email", "a@b.c", "password", "hunter22")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "a@b.c", fields["email"])
		assert.Equal(t, redacted, fields["password"])
	}
}
