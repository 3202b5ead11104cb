package domain

import "github.com/aretw0/coerce/pkg/ident"

// Coercion converts a raw value into a more specific one. Values it does not
// understand are returned unchanged.
type Coercion func(any) (any, error)

// Identity is the coercion that changes nothing.
func Identity(x any) (any, error) { return x, nil }

// FieldErrorHandler decides what happens when coercing the value under key
// fails during a structure walk. Returning a nil error replaces the value with
// the returned one; returning an error aborts the walk.
type FieldErrorHandler func(key ident.Keyword, value any, err error) (any, error)
