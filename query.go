package coerce

import (
	"net/url"

	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

// CoerceQuery coerces URL query parameters. A parameter given once becomes a
// string before coercion and one given several times a []any, except that
// parameters declared as collections are always sequences.
func (c *Coercer) CoerceQuery(values url.Values) (map[string]any, error) {
	raw := make(map[string]any, len(values))
	for key, vs := range values {
		raw[key] = c.queryValue(key, vs)
	}

	out, err := c.CoerceStructure(raw)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func (c *Coercer) queryValue(key string, vs []string) any {
	if len(vs) == 1 && !c.isCollection(key) {
		return vs[0]
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func (c *Coercer) isCollection(key string) bool {
	id, err := ident.ParseKeyword(key)
	if err != nil {
		return false
	}
	form, ok, err := c.GoverningForm(id)
	if err != nil || !ok {
		return false
	}
	_, isColl := form.(schema.CollOf)
	return isColl
}

// CoerceQuery coerces URL query parameters with the default Coercer.
func CoerceQuery(values url.Values) (map[string]any, error) {
	return Default().CoerceQuery(values)
}
