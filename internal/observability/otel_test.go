package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestStartSpanRecordsError(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := StartSpan(context.Background(), "registration.insert", attribute.Int64("student_id", 7))
	EndSpan(span, errors.New("constraint violation"))

	_, ok := StartSpan(context.Background(), "registration.count")
	EndSpan(ok, nil)

	ended := rec.Ended()
	if len(ended) != 2 {
		t.Fatalf("ended spans: want=2 got=%d", len(ended))
	}
	if ended[0].Name() != "registration.insert" || ended[0].Status().Code != codes.Error {
		t.Fatalf("first span: name=%s status=%v", ended[0].Name(), ended[0].Status())
	}
	if ended[1].Status().Code == codes.Error {
		t.Fatalf("second span must not be an error")
	}
}

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0.25: 0.25, 3: 1}
	for in, want := range cases {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v): want=%v got=%v", in, want, got)
		}
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{Enabled: false})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
