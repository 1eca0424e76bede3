package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for service spans
const TracerName = "github.com/fiscal/registros"

// Span attribute keys
const (
	AttrRFC        = attribute.Key("registro.rfc")
	AttrApproved   = attribute.Key("registro.approved")
	AttrCount      = attribute.Key("registro.count")
	AttrOutcome    = attribute.Key("registro.outcome")
	AttrHTTPRoute  = attribute.Key("http.route")
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
)

// StartServiceSpan starts a span named {service}.{method}.
//
//	ctx, span := telemetry.StartServiceSpan(ctx, "registro", "set_approval")
//	defer span.End()
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.GetTracerProvider().Tracer(TracerName).Start(ctx,
		fmt.Sprintf("%s.%s", service, method),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// RecordError records err on the span and marks it failed.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
