package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StartRequestSpan starts a server span for an HTTP request on the given
// route. The caller must end the span with EndRequestSpan.
func StartRequestSpan(ctx context.Context, tracer trace.Tracer, method, route string) (context.Context, trace.Span) {
	return tracer.Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("http.route", route),
		),
	)
}

// EndRequestSpan records the response status on the span and ends it.
// Statuses of 500 and above mark the span as errored.
func EndRequestSpan(span trace.Span, status int) {
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= 500 {
		span.SetStatus(codes.Error, "")
	}
	span.End()
}
