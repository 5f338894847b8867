package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
)

func TestObserveStoreOpLabelsOutcome(t *testing.T) {
	m := NewMetrics()
	m.ObserveStoreOp("registration.insert", nil, 3*time.Millisecond)
	m.ObserveStoreOp("registration.insert", apperr.ConstraintViolation("registration.insert", "dup", nil), time.Millisecond)
	m.ObserveStoreOp("registration.find_by_key", apperr.NotFound("registration.find_by_key", "none"), time.Millisecond)

	if got := testutil.ToFloat64(m.storeOps.WithLabelValues("registration.insert", "ok")); got != 1 {
		t.Fatalf("insert ok: want=1 got=%v", got)
	}
	if got := testutil.ToFloat64(m.storeOps.WithLabelValues("registration.insert", "constraint_violation")); got != 1 {
		t.Fatalf("insert constraint_violation: want=1 got=%v", got)
	}
	if got := testutil.ToFloat64(m.storeOps.WithLabelValues("registration.find_by_key", "not_found")); got != 1 {
		t.Fatalf("find not_found: want=1 got=%v", got)
	}
	if n := testutil.CollectAndCount(m.storeLatency); n != 2 {
		t.Fatalf("latency series: want=2 got=%d", n)
	}
}

func TestWritePrometheus(t *testing.T) {
	m := NewMetrics()
	m.ObserveStoreOp("registration.count", nil, time.Millisecond)

	var buf bytes.Buffer
	if err := m.WritePrometheus(&buf); err != nil {
		t.Fatalf("WritePrometheus: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE registrar_store_operations_total counter",
		`registrar_store_operations_total{op="registration.count",outcome="ok"} 1`,
		"registrar_store_operation_duration_seconds_bucket",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("exposition missing %q:\n%s", want, out)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveStoreOp("x", nil, time.Second)
	if err := m.RegisterDBStats(nil, "x"); err != nil {
		t.Fatalf("RegisterDBStats on nil: %v", err)
	}
	if err := m.WritePrometheus(&bytes.Buffer{}); err != nil {
		t.Fatalf("WritePrometheus on nil: %v", err)
	}
}
