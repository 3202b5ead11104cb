package domain

import "maps"

// Record is a mapping that carries metadata alongside its values.
// Walkers copy Meta onto the records they produce.
type Record struct {
	Values map[string]any `json:"values"`
	Meta   map[string]any `json:"meta,omitempty"`
}

// NewRecord creates a record with the given values and no metadata.
func NewRecord(values map[string]any) *Record {
	return &Record{Values: values}
}

// WithMeta returns r after setting a metadata entry.
func (r *Record) WithMeta(key string, value any) *Record {
	if r.Meta == nil {
		r.Meta = make(map[string]any)
	}
	r.Meta[key] = value
	return r
}

// CloneMeta returns a shallow copy of the metadata.
func (r *Record) CloneMeta() map[string]any {
	if r.Meta == nil {
		return nil
	}
	return maps.Clone(r.Meta)
}
