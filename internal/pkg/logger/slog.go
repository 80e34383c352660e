package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	BookingIDKey contextKey = "booking_id"
)

// ContextHandler adds request and booking identifiers found in the context to every record
// and a stack trace to error records.
type ContextHandler struct {
	slog.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}

		if bookingID, ok := ctx.Value(BookingIDKey).(string); ok {
			r.AddAttrs(slog.String("booking_id", bookingID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// WithBookingID stores the booking id so later log lines of the same flow carry it.
func WithBookingID(ctx context.Context, bookingID string) context.Context {
	return context.WithValue(ctx, BookingIDKey, bookingID)
}

// InitStructuredLogger initialize structured logger
func InitStructuredLogger(level slog.Leveler) {
	slog.SetDefault(New(os.Stdout, level, "travel-booking-service"))
}

// New builds a JSON logger writing to w tagged with the service name.
func New(w io.Writer, level slog.Leveler, service string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	if level.Level() == slog.LevelDebug {
		opts.AddSource = true
	}

	handler := &ContextHandler{Handler: slog.NewJSONHandler(w, opts)}

	return slog.New(handler).With(slog.String("service", service))
}
