package runtime

import (
	"fmt"
	"reflect"

	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/ident"
)

// CoerceStructure walks x depth-first. Every mapping found has each value
// coerced with its own key as the schema identifier, and the coerced values
// are walked in turn. Sequences are traversed; scalars are returned as is.
//
// The first coercion error aborts the walk unless a FieldErrorHandler
// recovers from it.
func (c *Coercer) CoerceStructure(x any) (any, error) {
	return c.walk(x)
}

func (c *Coercer) walk(x any) (any, error) {
	switch v := x.(type) {
	case nil:
		return nil, nil

	case map[string]any:
		out, err := c.walkStringMap(v)
		if err != nil {
			return nil, err
		}
		return out, nil

	case map[ident.Keyword]any:
		out := make(map[ident.Keyword]any, len(v))
		for k, val := range v {
			coerced, err := c.field(k, val)
			if err != nil {
				return nil, err
			}
			out[k] = coerced
		}
		return out, nil

	case *domain.Record:
		if v == nil {
			return v, nil
		}
		values, err := c.walkStringMap(v.Values)
		if err != nil {
			return nil, err
		}
		return &domain.Record{Values: values, Meta: v.CloneMeta()}, nil

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			walked, err := c.walk(e)
			if err != nil {
				return nil, err
			}
			out[i] = walked
		}
		return out, nil
	}

	return c.walkReflect(x)
}

func (c *Coercer) walkStringMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	out := make(map[string]any, len(m))
	for k, val := range m {
		coerced, err := c.stringField(k, val)
		if err != nil {
			return nil, err
		}
		out[k] = coerced
	}
	return out, nil
}

// stringField treats keys that are not valid identifiers as having no schema.
func (c *Coercer) stringField(key string, val any) (any, error) {
	id, err := ident.ParseKeyword(key)
	if err != nil {
		return c.walk(val)
	}
	return c.field(id, val)
}

// field coerces one mapping entry and walks the result.
func (c *Coercer) field(id ident.Keyword, val any) (any, error) {
	coerced, err := c.CoerceValue(id, val)
	if err != nil {
		if c.onFieldError == nil {
			return nil, fmt.Errorf("coerce %s: %w", id, err)
		}
		coerced, err = c.onFieldError(id, val, err)
		if err != nil {
			return nil, err
		}
	}
	return c.walk(coerced)
}

// walkReflect handles string-keyed maps and slices of other concrete types.
// Maps come back as map[string]any since their values may change type.
func (c *Coercer) walkReflect(x any) (any, error) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return x, nil
		}
		if rv.IsNil() {
			return x, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			coerced, err := c.stringField(key, iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[key] = coerced
		}
		return out, nil

	case reflect.Slice, reflect.Array:
		if !mayContainMap(rv.Type().Elem()) {
			return x, nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			walked, err := c.walk(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = walked
		}
		return out, nil

	default:
		return x, nil
	}
}

// mayContainMap reports whether values of t can hold a mapping.
func mayContainMap(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Map, reflect.Interface, reflect.Slice, reflect.Array, reflect.Pointer:
		return true
	default:
		return false
	}
}
