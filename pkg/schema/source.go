package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/coerce/pkg/ident"
)

// Source exposes declared forms by identifier.
type Source interface {
	// FormOf returns the declared form, or false if id is not registered.
	FormOf(id ident.Keyword) (Form, bool)
	// IsRegistered reports whether id has a declared form.
	IsRegistered(id ident.Keyword) bool
}

// ParentSource is implemented by sources that record an explicit parent
// for a schema.
type ParentSource interface {
	ParentOf(id ident.Keyword) (ident.Keyword, bool)
}

// Registry is an in-memory Source.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	forms   map[ident.Keyword]Form
	parents map[ident.Keyword]ident.Keyword
}

var (
	_ Source       = (*Registry)(nil)
	_ ParentSource = (*Registry)(nil)
)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		forms:   make(map[ident.Keyword]Form),
		parents: make(map[ident.Keyword]ident.Keyword),
	}
}

// FromSchema creates a registry holding every entry of s.
func FromSchema(s Schema) *Registry {
	r := NewRegistry()
	for id, form := range s {
		if form != nil {
			r.forms[id] = form
		}
	}
	return r
}

// Define declares (or redeclares) the form of id.
func (r *Registry) Define(id ident.Keyword, form Form) error {
	if id.IsEmpty() {
		return fmt.Errorf("schema: cannot define an empty identifier")
	}
	if form == nil {
		return fmt.Errorf("schema %s: form is nil", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[id] = form
	return nil
}

// MustDefine is like Define but panics on error.
func (r *Registry) MustDefine(id string, form Form) *Registry {
	if err := r.Define(ident.MustKeyword(id), form); err != nil {
		panic(err)
	}
	return r
}

// DefineParent records parent as the declared parent of id.
func (r *Registry) DefineParent(id, parent ident.Keyword) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parents[id] = parent
}

// FormOf returns the declared form of id.
func (r *Registry) FormOf(id ident.Keyword) (Form, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.forms[id]
	return f, ok
}

// IsRegistered reports whether id has a declared form.
func (r *Registry) IsRegistered(id ident.Keyword) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.forms[id]
	return ok
}

// ParentOf returns the declared parent of id.
func (r *Registry) ParentOf(id ident.Keyword) (ident.Keyword, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parents[id]
	return p, ok
}

// Parents returns a copy of the declared parents.
func (r *Registry) Parents() map[ident.Keyword]ident.Keyword {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[ident.Keyword]ident.Keyword, len(r.parents))
	for k, v := range r.parents {
		out[k] = v
	}
	return out
}

// IDs returns every defined identifier in lexical order.
func (r *Registry) IDs() []ident.Keyword {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]ident.Keyword, 0, len(r.forms))
	for id := range r.forms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Schema returns a snapshot of the defined forms.
func (r *Registry) Schema() Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(Schema, len(r.forms))
	for id, f := range r.forms {
		out[id] = f
	}
	return out
}
