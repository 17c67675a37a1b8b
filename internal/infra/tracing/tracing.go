// Package tracing starts an OpenTelemetry span for every HTTP request.
//
// Spans go to the global tracer provider. Without an SDK installed the
// provider is a no-op, so the middleware costs almost nothing until a
// deployment wires an exporter.
package tracing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Middleware returns gin middleware that wraps each request in a server span
// named "<METHOD> <route>".
func Middleware(serviceName string) gin.HandlerFunc {
	return MiddlewareWithProvider(serviceName, otel.GetTracerProvider())
}

// MiddlewareWithProvider is Middleware with an explicit tracer provider.
func MiddlewareWithProvider(serviceName string, tp trace.TracerProvider) gin.HandlerFunc {
	tracer := tp.Tracer(serviceName)

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", c.Request.Method),
				attribute.String("http.route", route),
				attribute.String("url.path", c.Request.URL.Path),
			),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
