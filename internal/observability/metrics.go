package observability

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
	"gorm.io/gorm"

	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

const metricsNamespace = "registrar"

// Metrics holds the store-operation collectors. All methods are safe on a nil
// receiver so callers never need to check whether metrics were initialized.
type Metrics struct {
	registry     *prometheus.Registry
	storeOps     *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
}

var (
	initOnce sync.Once
	instance *Metrics
)

// InitMetrics installs the process-wide Metrics once.
func InitMetrics(log *logger.Logger) *Metrics {
	initOnce.Do(func() {
		instance = NewMetrics()
		if log != nil {
			log.Info("metrics initialized", "namespace", metricsNamespace)
		}
	})
	return instance
}

// Current returns the process-wide Metrics, or nil before InitMetrics.
func Current() *Metrics {
	return instance
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and outcome code.",
		}, []string{"op", "outcome"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"op"}),
	}
	m.registry.MustRegister(m.storeOps, m.storeLatency)
	return m
}

// ObserveStoreOp counts op under the error code of err ("ok" on success).
func (m *Metrics) ObserveStoreOp(op string, err error, dur time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = string(apperr.CodeOf(err))
	}
	m.storeOps.WithLabelValues(op, outcome).Inc()
	m.storeLatency.WithLabelValues(op).Observe(dur.Seconds())
}

// RegisterDBStats exposes the connection pool stats of db under dbName.
func (m *Metrics) RegisterDBStats(db *gorm.DB, dbName string) error {
	if m == nil || db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	err = m.registry.Register(collectors.NewDBStatsCollector(sqlDB, dbName))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WritePrometheus writes every collected family in the text exposition format.
func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
