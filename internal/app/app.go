package app

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	dbpkg "github.com/acmecollege/registrar/internal/data/db"
	"github.com/acmecollege/registrar/internal/observability"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	store        dbpkg.Store
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	LoadDotEnv(log, os.Getenv("DOTENV_PATH"))
	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	return NewWithConfig(ctx, log, cfg)
}

// NewWithConfig opens and migrates the store described by cfg and wires the
// repos and services on top of it.
func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	shutdown := observability.InitOTel(ctx, log, cfg.Otel)

	store, err := dbpkg.Open(log, cfg.DB)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open %s store: %w", cfg.DB.Driver, err)
	}
	theDB := store.DB()
	if err := dbpkg.AutoMigrateAll(theDB); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("%s automigrate: %w", cfg.DB.Driver, err)
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.InitMetrics(log)
		if err := metrics.RegisterDBStats(theDB, cfg.DB.Driver); err != nil {
			log.Warn("Failed to register db pool metrics", "error", err)
		}
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		store:        store,
		otelShutdown: shutdown,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil && a.Log != nil {
			a.Log.Warn("Failed to close store", "error", err)
		}
		a.store = nil
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil && a.Log != nil {
			a.Log.Warn("Failed to shut down tracing", "error", err)
		}
		a.otelShutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
