package logger

import (
	"context"
	"log/slog"
)

type invocationKey struct{}

// WithInvocationID stores a validation invocation identifier in ctx.
// Loggers built with InvocationIDExtractor attach it to every record.
func WithInvocationID(ctx context.Context, id any) context.Context {
	return context.WithValue(ctx, invocationKey{}, id)
}

// InvocationIDFromContext returns the identifier stored by WithInvocationID.
func InvocationIDFromContext(ctx context.Context) (any, bool) {
	id := ctx.Value(invocationKey{})
	return id, id != nil
}

// InvocationIDExtractor is a ContextExtractor adding "invocation_id" to records.
func InvocationIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := InvocationIDFromContext(ctx); ok {
		return InvocationID(id), true
	}
	return slog.Attr{}, false
}
