// internal/infrastructure/middleware/transport.go
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/damon-houk/hnb-exchange/internal/infrastructure/logger"
	"github.com/damon-houk/hnb-exchange/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

// Keys for context values
type contextKey string

const (
	requestIDKey contextKey = "request_id"

	// RequestIDHeader is sent upstream so a run can be correlated with HNB access logs
	RequestIDHeader = "X-Request-ID"
)

// Middleware decorates an outbound transport
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain wraps base with the middlewares; the first one is outermost
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base = middlewares[i](base)
	}
	return base
}

// NewRequestID generates a fresh run identifier
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID stores the request ID in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

// RequestIDTransport sets the X-Request-ID header from the request context
func RequestIDTransport(next http.RoundTripper) http.RoundTripper {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		requestID, ok := r.Context().Value(requestIDKey).(string)
		if !ok || requestID == "" || r.Header.Get(RequestIDHeader) != "" {
			return next.RoundTrip(r)
		}

		// A RoundTripper must not modify the caller's request
		r = r.Clone(r.Context())
		r.Header.Set(RequestIDHeader, requestID)

		return next.RoundTrip(r)
	})
}

// LoggingTransport logs outbound requests and their responses
func LoggingTransport(log logger.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			startTime := time.Now()
			requestID := GetRequestID(r.Context())

			log.Debug("Request sent", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"url":        r.URL.String(),
			})

			resp, err := next.RoundTrip(r)
			duration := time.Since(startTime)

			if err != nil {
				log.Error("Request failed", map[string]interface{}{
					"request_id":  requestID,
					"method":      r.Method,
					"host":        r.URL.Host,
					"duration_ms": duration.Milliseconds(),
					"error":       err.Error(),
				})
				return nil, err
			}

			log.Info("Response received", map[string]interface{}{
				"request_id":     requestID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status":         resp.StatusCode,
				"duration_ms":    duration.Milliseconds(),
				"content_type":   resp.Header.Get("Content-Type"),
				"content_length": resp.ContentLength,
			})

			return resp, nil
		})
	}
}

// MetricsTransport counts upstream requests by status code and observes their latency
func MetricsTransport(m *metrics.Metrics) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			startTime := time.Now()

			resp, err := next.RoundTrip(r)
			m.UpstreamRequestDuration.Observe(time.Since(startTime).Seconds())

			code := "error"
			if err == nil {
				code = strconv.Itoa(resp.StatusCode)
			}
			m.UpstreamRequestsTotal.WithLabelValues(code).Inc()

			return resp, err
		})
	}
}
