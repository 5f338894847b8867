package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRedactsSecretKeys(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core).With("service", "PostgresService")

	log.Info("connecting", "dsn", "postgres://u:p@h/db", "postgres_password", "hunter2", "host", "localhost")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries: want=1 got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["dsn"] != "[REDACTED]" {
		t.Fatalf("dsn not redacted: %v", fields["dsn"])
	}
	if fields["postgres_password"] != "[REDACTED]" {
		t.Fatalf("password not redacted: %v", fields["postgres_password"])
	}
	if fields["host"] != "localhost" {
		t.Fatalf("host: got %v", fields["host"])
	}
	if fields["service"] != "PostgresService" {
		t.Fatalf("inherited field missing: %v", fields["service"])
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"test", "production", "development", ""} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		log.Debug("hello", "mode", mode)
	}
}
