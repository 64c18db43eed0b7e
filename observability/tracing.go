package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of spans started by promptai.
const TracerName = "github.com/shaharia-lab/promptai"

// StartSpan starts a new span with the given name and options, using the tracer
// provider of the span already in ctx.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return trace.SpanFromContext(ctx).TracerProvider().
		Tracer(TracerName).
		Start(ctx, name, opts...)
}
