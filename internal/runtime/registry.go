package runtime

import (
	"fmt"

	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

// Register binds fn to id, replacing any previous binding.
// The identifier must be namespaced.
func (c *Coercer) Register(id ident.Keyword, fn domain.Coercion) (ident.Keyword, error) {
	if !id.Qualified() {
		return id, fmt.Errorf("register %q: %w", id.String(), domain.ErrInvalidIdentifier)
	}
	if fn == nil {
		return id, fmt.Errorf("register %s: coercion is nil", id)
	}

	c.mu.Lock()
	c.coercions[id] = fn
	c.mu.Unlock()

	c.logger.Debug("coercion registered", "schema", id.String())
	return id, nil
}

// ParentOf returns the schema id inherits coercions from: the parent declared
// by the source if it records one, otherwise the reference that id's form
// reduces to.
func (c *Coercer) ParentOf(id ident.Keyword) (ident.Keyword, bool) {
	if ps, ok := c.source.(schema.ParentSource); ok {
		if parent, ok := ps.ParentOf(id); ok {
			return parent, true
		}
	}

	form, ok := c.source.FormOf(id)
	if !ok {
		return ident.Keyword{}, false
	}
	for {
		and, isAnd := form.(schema.And)
		if !isAnd {
			break
		}
		if form, ok = and.Governing(); !ok {
			return ident.Keyword{}, false
		}
	}
	if ref, ok := form.(schema.Ref); ok {
		return ref.ID, true
	}
	return ident.Keyword{}, false
}

// Lookup finds the registered coercion for id, walking up parents when id
// has no entry of its own.
func (c *Coercer) Lookup(id ident.Keyword) (domain.Coercion, bool) {
	visited := newVisitSet()
	current := id
	for {
		if err := visited.enter(current); err != nil {
			c.emitCycle(id, err)
			return nil, false
		}

		c.mu.RLock()
		fn, ok := c.coercions[current]
		c.mu.RUnlock()
		if ok {
			return fn, true
		}

		parent, ok := c.ParentOf(current)
		if !ok {
			return nil, false
		}
		current = parent
	}
}

// Resolve returns the registered coercion for id if any, else the inferred
// one, else the identity.
func (c *Coercer) Resolve(id ident.Keyword) domain.Coercion {
	if fn, ok := c.Lookup(id); ok {
		c.emitResolve(id, domain.SourceRegistry)
		return fn
	}
	fn, found := c.infer(id, schema.Ref{ID: id}, newVisitSet())
	if found {
		c.emitResolve(id, domain.SourceInferred)
	} else {
		c.emitResolve(id, domain.SourceIdentity)
	}
	return fn
}

// Registered returns the identifiers with an explicit coercion.
func (c *Coercer) Registered() []ident.Keyword {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]ident.Keyword, 0, len(c.coercions))
	for id := range c.coercions {
		ids = append(ids, id)
	}
	return ids
}
