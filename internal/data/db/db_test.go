package db

import (
	"strings"
	"testing"
	"time"

	"github.com/acmecollege/registrar/internal/pkg/logger"
)

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		PostgresHost:     "localhost",
		PostgresPort:     "5432",
		PostgresUser:     "postgres",
		PostgresPassword: "p@ss word",
		PostgresName:     "acmecollege",
	}
	dsn := cfg.PostgresDSN()
	if !strings.HasPrefix(dsn, "postgres://postgres:") {
		t.Fatalf("dsn prefix: %s", dsn)
	}
	if !strings.Contains(dsn, "@localhost:5432/acmecollege") {
		t.Fatalf("dsn host/db: %s", dsn)
	}
	if !strings.HasSuffix(dsn, "sslmode=disable") {
		t.Fatalf("default sslmode: %s", dsn)
	}
	if strings.Contains(dsn, "p@ss word") {
		t.Fatalf("password must be escaped: %s", dsn)
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := (Config{}).SQLiteDSN(); !strings.Contains(got, "mode=memory") || !strings.Contains(got, "_foreign_keys=on") {
		t.Fatalf("memory dsn: %s", got)
	}
	if got := (Config{SQLitePath: "/tmp/college.db"}).SQLiteDSN(); !strings.HasPrefix(got, "file:/tmp/college.db?") {
		t.Fatalf("file dsn: %s", got)
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	store, err := Open(log, Config{Driver: DriverSQLite, SQLitePath: t.TempDir() + "/college.db", SlowThreshold: time.Second})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := AutoMigrateAll(store.DB()); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"course", "professor", "student", "course_registration"} {
		if !store.DB().Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
	if !store.DB().Migrator().HasIndex("course_registration", "idx_course_registration_course_id") {
		t.Fatalf("missing course index")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	if _, err := Open(log, Config{Driver: "oracle"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
