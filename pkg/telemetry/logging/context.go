package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for lint run IDs.
	RunIDKey contextKey = "run_id"

	// DocumentKey is the context key for the document being linted.
	DocumentKey contextKey = "document"

	// VariantKey is the context key for the selected document variant.
	VariantKey contextKey = "variant"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithDocument adds a document path to the context.
func WithDocument(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, DocumentKey, path)
}

// GetDocument retrieves the document path from the context.
func GetDocument(ctx context.Context) string {
	if path, ok := ctx.Value(DocumentKey).(string); ok {
		return path
	}
	return ""
}

// WithVariant adds a variant name to the context.
func WithVariant(ctx context.Context, variant string) context.Context {
	return context.WithValue(ctx, VariantKey, variant)
}

// GetVariant retrieves the variant name from the context.
func GetVariant(ctx context.Context) string {
	if variant, ok := ctx.Value(VariantKey).(string); ok {
		return variant
	}
	return ""
}

// extractContextFields returns the context fields as key-value pairs
// suitable for Logger.With.
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, string(RunIDKey), runID)
	}
	if path := GetDocument(ctx); path != "" {
		fields = append(fields, string(DocumentKey), path)
	}
	if variant := GetVariant(ctx); variant != "" {
		fields = append(fields, string(VariantKey), variant)
	}

	return fields
}
