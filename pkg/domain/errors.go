package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/coerce/pkg/ident"
)

// ErrInvalidIdentifier is returned when registering a coercion under an
// identifier that has no namespace.
var ErrInvalidIdentifier = errors.New("invalid identifier: namespace required")

// CycleError reports a schema reference chain that revisits an identifier.
type CycleError struct {
	Path []ident.Keyword // Identifiers in visit order, ending with the repeated one
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = id.String()
	}
	return fmt.Sprintf("schema reference cycle: %s", strings.Join(parts, " -> "))
}
