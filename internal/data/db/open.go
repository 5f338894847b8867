package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/pkg/logger"
)

// Store is an opened database handle of either driver.
type Store interface {
	DB() *gorm.DB
	Close() error
}

func Open(logg *logger.Logger, cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", DriverPostgres:
		pg, err := NewPostgresService(logg, cfg)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case DriverSQLite:
		lite, err := NewSQLiteService(logg, cfg)
		if err != nil {
			return nil, err
		}
		return lite, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
	}
}
