package domain

// ResolutionSource tells where a coercion function came from.
type ResolutionSource string

const (
	// SourceRegistry means an explicitly registered coercion was found,
	// either directly or through a parent schema.
	SourceRegistry ResolutionSource = "registry"
	// SourceInferred means the coercion was inferred from the schema form.
	SourceInferred ResolutionSource = "inferred"
	// SourceIdentity means nothing applied and the value is left as is.
	SourceIdentity ResolutionSource = "identity"
)
