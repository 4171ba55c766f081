package auditlog

import "context"

// Metadata describes what a command touched. Commands attach it to their
// context; the root command reads it back when writing the entry.
type Metadata struct {
	Node         string
	ResourceType string
	ResourceID   string
	ResourceName string

	// Outcome, when set, replaces the success outcome of a command that
	// returned no error (e.g. OutcomeCancelled).
	Outcome string
	Detail  string
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Non-empty fields of
// meta override those already attached.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(metadataKey{}).(Metadata)
	merged := Metadata{
		Node:         pick(meta.Node, existing.Node),
		ResourceType: pick(meta.ResourceType, existing.ResourceType),
		ResourceID:   pick(meta.ResourceID, existing.ResourceID),
		ResourceName: pick(meta.ResourceName, existing.ResourceName),
		Outcome:      pick(meta.Outcome, existing.Outcome),
		Detail:       pick(meta.Detail, existing.Detail),
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}

func pick(next, fallback string) string {
	if next != "" {
		return next
	}
	return fallback
}
