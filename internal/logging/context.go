package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldProject is the standardized structured logging key for project names.
	FieldProject = "project"
	// FieldOperation is the standardized structured logging key for engine operations (save, load, import, repair, search).
	FieldOperation = "operation"
	// FieldCorrelationID is the standardized structured logging key for request correlation identifiers.
	FieldCorrelationID = "correlation_id"
	// FieldAlert flags warnings or anomalies that should stand out in structured logs.
	FieldAlert = "alert"
	// FieldEventType is the standardized structured logging key for machine-readable event names.
	FieldEventType = "event_type"
	// FieldErrorCode is the standardized structured logging key for stable error identifiers.
	FieldErrorCode = "error_code"
	// FieldErrorHint is the standardized structured logging key for a suggested next step.
	FieldErrorHint = "error_hint"
)

type contextKey int

const (
	projectContextKey contextKey = iota
	operationContextKey
	correlationContextKey
)

// WithProject stores the project name on the context for downstream log lines.
func WithProject(ctx context.Context, name string) context.Context {
	name = strings.TrimSpace(name)
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, projectContextKey, name)
}

// ProjectFromContext returns the project name carried by the context.
func ProjectFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(projectContextKey).(string)
	return name, ok && name != ""
}

// WithOperation stores the engine operation name on the context.
func WithOperation(ctx context.Context, op string) context.Context {
	op = strings.TrimSpace(op)
	if op == "" {
		return ctx
	}
	return context.WithValue(ctx, operationContextKey, op)
}

// OperationFromContext returns the operation name carried by the context.
func OperationFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	op, ok := ctx.Value(operationContextKey).(string)
	return op, ok && op != ""
}

// WithCorrelationID stores a correlation identifier on the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationContextKey, id)
}

// CorrelationIDFromContext returns the correlation identifier carried by the context.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationContextKey).(string)
	return id, ok && id != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if name, ok := ProjectFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldProject, name))
	}
	if op, ok := OperationFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldOperation, op))
	}
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, id))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
