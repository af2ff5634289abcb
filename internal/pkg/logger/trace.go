package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey is the key under which the trace id travels in a Context.
const TraceIDKey = "trace_id"

// ContextHandler extracts the trace_id from the context and attaches it to
// every record.
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
