package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/platform/logger"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// AdminContextKey is the context key for the authenticated admin
	AdminContextKey ContextKey = "admin"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// traceLoggerKey marks a context whose logger already has trace_id.
	traceLoggerKey ContextKey = "traceLogger"

	// TraceIDLength is the number of bytes used to generate the trace ID
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithTraceLogger stores base, annotated with the context's trace ID, as the
// request logger and returns it alongside the new context.
func WithTraceLogger(ctx context.Context, base *slog.Logger) (context.Context, *slog.Logger) {
	log := base.With(slog.String("trace_id", GetTraceID(ctx)))
	ctx = logger.WithLogger(ctx, log)
	return context.WithValue(ctx, traceLoggerKey, true), log
}

func hasTraceLogger(ctx context.Context) bool {
	marked, _ := ctx.Value(traceLoggerKey).(bool)
	return marked
}

// WithAdmin stores the authenticated admin in the context.
func WithAdmin(ctx context.Context, admin domain.AdminSummary) context.Context {
	return context.WithValue(ctx, AdminContextKey, admin)
}

// AdminFromContext returns the admin placed in the context by the auth
// middleware.
func AdminFromContext(ctx context.Context) (domain.AdminSummary, bool) {
	admin, ok := ctx.Value(AdminContextKey).(domain.AdminSummary)
	if !ok || admin.ID <= 0 {
		return domain.AdminSummary{}, false
	}
	return admin, true
}

// generateTraceID creates a random 32-character hex trace ID.
// If crypto/rand fails it falls back to a time-based ID, never a static value.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)
	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"bytes_requested", TraceIDLength,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}
	return hex.EncodeToString(b)
}

func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)
	now := time.Now()
	binary.BigEndian.PutUint64(fallbackID[:8], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(now.Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(now.Unix()))
	return hex.EncodeToString(fallbackID)
}
