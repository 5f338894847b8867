package app

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	dbpkg "github.com/acmecollege/registrar/internal/data/db"
	"github.com/acmecollege/registrar/internal/observability"
	"github.com/acmecollege/registrar/internal/pkg/logger"
	"github.com/acmecollege/registrar/internal/utils"
)

type Config struct {
	Environment    string
	MetricsEnabled bool
	DB             dbpkg.Config
	Otel           observability.OtelConfig
}

// LoadDotEnv loads path into the process environment if the file exists.
// Variables already set win over the file.
func LoadDotEnv(log *logger.Logger, path string) {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err != nil {
		log.Debug("No .env file found, using process environment", "path", path)
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Warn("Failed to load .env file", "path", path, "error", err)
		return
	}
	log.Info("Loaded .env file", "path", path)
}

func LoadConfig(log *logger.Logger) Config {
	env := utils.GetEnv("APP_ENV", "development", log)

	dbCfg := dbpkg.Config{
		Driver:           utils.GetEnv("DB_DRIVER", dbpkg.DriverSQLite, log),
		PostgresHost:     utils.GetEnv("POSTGRES_HOST", "localhost", log),
		PostgresPort:     utils.GetEnv("POSTGRES_PORT", "5432", log),
		PostgresUser:     utils.GetEnv("POSTGRES_USER", "registrar", log),
		PostgresPassword: utils.GetEnv("POSTGRES_PASSWORD", "", log),
		PostgresName:     utils.GetEnv("POSTGRES_NAME", "registrar", log),
		PostgresSSLMode:  utils.GetEnv("POSTGRES_SSLMODE", "disable", log),
		SQLitePath:       utils.GetEnv("SQLITE_PATH", "registrar.db", log),
		MaxOpenConns:     utils.GetEnvAsInt("DB_MAX_OPEN_CONNS", 10, log),
		MaxIdleConns:     utils.GetEnvAsInt("DB_MAX_IDLE_CONNS", 5, log),
		ConnMaxLifetime:  time.Duration(utils.GetEnvAsInt("DB_CONN_MAX_LIFETIME_SECONDS", 300, log)) * time.Second,
		SlowThreshold:    time.Duration(utils.GetEnvAsInt("DB_SLOW_QUERY_MS", 200, log)) * time.Millisecond,
	}

	otelCfg := observability.OtelConfig{
		Enabled:     utils.GetEnvAsBool("OTEL_ENABLED", false, log),
		ServiceName: utils.GetEnv("OTEL_SERVICE_NAME", "registrar", log),
		Environment: env,
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
		Endpoint:    utils.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
		Insecure:    utils.GetEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true, log),
		SampleRatio: utils.GetEnvAsFloat("OTEL_SAMPLER_RATIO", 1.0, log),
	}

	return Config{
		Environment:    env,
		MetricsEnabled: utils.GetEnvAsBool("METRICS_ENABLED", true, log),
		DB:             dbCfg,
		Otel:           otelCfg,
	}
}
