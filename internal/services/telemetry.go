package services

import (
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/acmecollege/registrar/internal/observability"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
)

// instrument opens a span for op and returns dbc bound to the span context.
// The returned func ends the span and records the outcome in the store metrics.
func instrument(dbc dbctx.Context, op string, attrs ...attribute.KeyValue) (dbctx.Context, func(error)) {
	start := time.Now()
	ctx, span := observability.StartSpan(dbc.Ctx, op, attrs...)
	dbc.Ctx = ctx
	return dbc, func(err error) {
		observability.EndSpan(span, err)
		observability.Current().ObserveStoreOp(op, err, time.Since(start))
	}
}
