package observability

import (
	"net/http"

	"github.com/louisbranch/showcase/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/showcase/internal/services/web"

// Tracing starts a server span per request using the global provider.
func Tracing() httpx.Middleware {
	return TracingWithProvider(nil, nil)
}

// TracingWithProvider starts server spans from provider, extracting parent
// context with propagator. Nil arguments fall back to the otel globals.
func TracingWithProvider(provider trace.TracerProvider, propagator propagation.TextMapPropagator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tp := provider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			prop := propagator
			if prop == nil {
				prop = otel.GetTextMapPropagator()
			}
			ctx := prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tp.Tracer(tracerName).Start(ctx, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
				),
			)
			defer span.End()

			rec := wrapWriter(w)
			traced := r.WithContext(ctx)
			next.ServeHTTP(rec, traced)
			// Outer middleware reads the matched pattern from the original request.
			r.Pattern = traced.Pattern

			route := routeLabel(traced)
			status := rec.statusCode()
			span.SetName(r.Method + " " + route)
			span.SetAttributes(
				semconv.HTTPRoute(route),
				semconv.HTTPResponseStatusCode(status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}
