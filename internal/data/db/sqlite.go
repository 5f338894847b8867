package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/pkg/logger"
)

// SQLiteService is the embedded store. An in-memory database lives only as
// long as its single pooled connection, so the pool is pinned to one.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(logg *logger.Logger, cfg Config) (*SQLiteService, error) {
	serviceLog := logg.With("service", "SQLiteService")

	path := cfg.SQLitePath
	if path == "" {
		path = ":memory:"
	}
	serviceLog.Info("Opening SQLite...", "path", path)
	db, err := gorm.Open(sqlite.Open(cfg.SQLiteDSN()), gormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access SQLite pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable SQLite foreign keys: %w", err)
	}
	return &SQLiteService{db: db, log: serviceLog}, nil
}

func (s *SQLiteService) DB() *gorm.DB { return s.db }

func (s *SQLiteService) Close() error { return closeDB(s.db) }
