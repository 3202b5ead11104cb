package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

// ValidateSchemas checks for dangling references, dangling parents and
// reference cycles in the governing chain of every schema.
func ValidateSchemas(reg *schema.Registry) error {
	var errors []string

	for _, id := range reg.IDs() {
		form, _ := reg.FormOf(id)
		for _, target := range refs(form) {
			if !reg.IsRegistered(target) {
				errors = append(errors, fmt.Sprintf("Missing schema: '%s' referenced by '%s'", target, id))
			}
		}
		if path := cycle(reg, id); path != nil {
			errors = append(errors, fmt.Sprintf("Reference cycle: %s", joinPath(path)))
		}
	}

	for id, parent := range reg.Parents() {
		if !reg.IsRegistered(parent) {
			errors = append(errors, fmt.Sprintf("Missing parent: '%s' declared by '%s'", parent, id))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}

// refs collects every identifier referenced anywhere inside form.
func refs(form schema.Form) []ident.Keyword {
	var out []ident.Keyword
	queue := []schema.Form{form}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		switch f := current.(type) {
		case schema.Ref:
			out = append(out, f.ID)
		case schema.And:
			queue = append(queue, f.Forms...)
		case schema.Or:
			queue = append(queue, f.Forms...)
		case schema.Nilable:
			queue = append(queue, f.Form)
		case schema.CollOf:
			queue = append(queue, f.Elem)
		}
	}
	return out
}

// cycle follows the governing chain of id and returns the looping path, if any.
func cycle(reg *schema.Registry, id ident.Keyword) []ident.Keyword {
	visited := map[ident.Keyword]bool{id: true}
	path := []ident.Keyword{id}

	form, ok := reg.FormOf(id)
	for ok {
		switch f := form.(type) {
		case schema.And:
			form, ok = f.Governing()
		case schema.Ref:
			path = append(path, f.ID)
			if visited[f.ID] {
				if f.ID != id {
					// Loops that do not pass through id are reported by their members.
					return nil
				}
				return path
			}
			visited[f.ID] = true
			form, ok = reg.FormOf(f.ID)
		default:
			return nil
		}
	}
	return nil
}

func joinPath(path []ident.Keyword) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}
