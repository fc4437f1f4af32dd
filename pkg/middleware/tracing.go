package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds tracing middleware configuration
type TracingConfig struct {
	ServiceName string
	SkipPaths   []string
	Propagators propagation.TextMapPropagator
	TracerName  string
}

// DefaultTracingConfig returns default tracing configuration
func DefaultTracingConfig(serviceName string) *TracingConfig {
	return &TracingConfig{
		ServiceName: serviceName,
		SkipPaths:   []string{"/health", "/ready", "/metrics"},
		Propagators: otel.GetTextMapPropagator(),
		TracerName:  serviceName,
	}
}

// TracingMiddleware creates middleware that adds distributed tracing
func TracingMiddleware(config *TracingConfig) gin.HandlerFunc {
	tracer := otel.Tracer(config.TracerName)
	skipMap := make(map[string]bool)
	for _, path := range config.SkipPaths {
		skipMap[path] = true
	}

	return func(c *gin.Context) {
		if skipMap[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Extract trace context from incoming request
		ctx := config.Propagators.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		spanName := fmt.Sprintf("%s %s", c.Request.Method, path)

		ctx, span := tracer.Start(ctx, spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPMethodKey.String(c.Request.Method),
				semconv.HTTPRouteKey.String(path),
				semconv.HTTPURLKey.String(c.Request.URL.String()),
				attribute.String("http.user_agent", c.Request.UserAgent()),
				attribute.String("http.client_ip", c.ClientIP()),
				attribute.String("service.name", config.ServiceName),
			),
		)
		defer span.End()

		if requestID := GetRequestID(c); requestID != "" {
			span.SetAttributes(attribute.String("request.id", requestID))
		}
		if correlationID := GetCorrelationID(c); correlationID != "" {
			span.SetAttributes(attribute.String("correlation.id", correlationID))
		}

		// Expose trace ID to the logging middleware
		c.Set(ContextKeyTraceID, span.SpanContext().TraceID().String())

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			semconv.HTTPStatusCodeKey.Int(status),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		if status >= 400 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		} else {
			span.SetStatus(codes.Ok, "")
		}

		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				span.RecordError(err.Err)
			}
		}
	}
}

// SimpleTracingMiddleware creates a tracing middleware using default config
func SimpleTracingMiddleware(serviceName string) gin.HandlerFunc {
	return TracingMiddleware(DefaultTracingConfig(serviceName))
}

// SpanFromGinContext extracts the span from a Gin context
func SpanFromGinContext(c *gin.Context) trace.Span {
	return trace.SpanFromContext(c.Request.Context())
}

// AddSpanAttributes adds attributes to the current span from Gin context
func AddSpanAttributes(c *gin.Context, attrs map[string]interface{}) {
	span := SpanFromGinContext(c)
	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			span.SetAttributes(attribute.String(k, val))
		case int:
			span.SetAttributes(attribute.Int(k, val))
		case int64:
			span.SetAttributes(attribute.Int64(k, val))
		case float64:
			span.SetAttributes(attribute.Float64(k, val))
		case bool:
			span.SetAttributes(attribute.Bool(k, val))
		default:
			span.SetAttributes(attribute.String(k, fmt.Sprintf("%v", val)))
		}
	}
}
