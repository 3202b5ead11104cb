package runtime

import (
	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

// visitSet tracks the identifiers dereferenced along one resolution path.
type visitSet struct {
	seen map[ident.Keyword]struct{}
	path []ident.Keyword
}

func newVisitSet() *visitSet {
	return &visitSet{seen: make(map[ident.Keyword]struct{})}
}

// enter records id and returns a CycleError if it was already on the path.
func (v *visitSet) enter(id ident.Keyword) error {
	v.path = append(v.path, id)
	if _, ok := v.seen[id]; ok {
		return &domain.CycleError{Path: append([]ident.Keyword(nil), v.path...)}
	}
	v.seen[id] = struct{}{}
	return nil
}

// GoverningForm returns the form that drives coercion of id: references are
// followed and conjunctions reduced to their first subform until something
// else is reached. It returns false when no form is declared along the way.
func (c *Coercer) GoverningForm(id ident.Keyword) (schema.Form, bool, error) {
	return c.governing(schema.Ref{ID: id}, newVisitSet())
}

func (c *Coercer) governing(form schema.Form, visited *visitSet) (schema.Form, bool, error) {
	for {
		switch f := form.(type) {
		case nil:
			return nil, false, nil
		case schema.Ref:
			if err := visited.enter(f.ID); err != nil {
				return nil, false, err
			}
			next, ok := c.source.FormOf(f.ID)
			if !ok {
				return nil, false, nil
			}
			form = next
		case schema.And:
			next, ok := f.Governing()
			if !ok {
				return nil, false, nil
			}
			form = next
		default:
			return form, true, nil
		}
	}
}

// Infer derives a coercion for id from its declared form. It never fails:
// unknown predicates, missing forms and reference cycles yield the identity.
func (c *Coercer) Infer(id ident.Keyword) domain.Coercion {
	fn, _ := c.infer(id, schema.Ref{ID: id}, newVisitSet())
	return fn
}

// InferForm derives a coercion directly from a form.
func (c *Coercer) InferForm(form schema.Form) domain.Coercion {
	fn, _ := c.infer(ident.Keyword{}, form, newVisitSet())
	return fn
}

// infer reports whether something other than the identity was found.
func (c *Coercer) infer(id ident.Keyword, form schema.Form, visited *visitSet) (domain.Coercion, bool) {
	governing, ok, err := c.governing(form, visited)
	if err != nil {
		c.emitCycle(id, err)
		return domain.Identity, false
	}
	if !ok {
		return domain.Identity, false
	}

	switch f := governing.(type) {
	case schema.Pred:
		return PredicateCoercion(f)

	case schema.Nilable:
		inner, _ := c.infer(id, f.Form, visited)
		return nilable(inner), true

	case schema.CollOf:
		elem, found := c.infer(id, f.Elem, visited)
		if !found {
			return domain.Identity, false
		}
		return collOf(elem), true

	default:
		// Or has no single governing alternative.
		return domain.Identity, false
	}
}

func nilable(inner domain.Coercion) domain.Coercion {
	return func(x any) (any, error) {
		if x == "nil" {
			return nil, nil
		}
		return inner(x)
	}
}

// collOf coerces every element of a []any or []string. Anything else is
// returned unchanged.
func collOf(elem domain.Coercion) domain.Coercion {
	return func(x any) (any, error) {
		switch xs := x.(type) {
		case []any:
			out := make([]any, len(xs))
			for i, e := range xs {
				v, err := elem(e)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		case []string:
			out := make([]any, len(xs))
			for i, e := range xs {
				v, err := elem(e)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		default:
			return x, nil
		}
	}
}
