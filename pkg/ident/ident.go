// Package ident defines namespaced identifiers used as schema keys.
//
// A Keyword names a schema (and doubles as a map key in user data). A Symbol is
// a plain identifier value produced by the symbol parsers. Both render as
// "namespace/name", or just "name" when the namespace is empty.
package ident

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName is returned when an identifier string has no name segment.
var ErrEmptyName = errors.New("identifier has no name")

// Ident is implemented by Keyword and Symbol.
type Ident interface {
	GetNamespace() string
	GetName() string
	String() string
}

// Keyword is a possibly namespaced name.
type Keyword struct {
	Namespace string
	Name      string
}

// NewKeyword creates a Keyword. An empty namespace yields a simple keyword.
func NewKeyword(namespace, name string) Keyword {
	return Keyword{Namespace: namespace, Name: name}
}

// ParseKeyword parses "name" or "namespace/name".
func ParseKeyword(s string) (Keyword, error) {
	ns, name, err := split(s)
	if err != nil {
		return Keyword{}, err
	}
	return Keyword{Namespace: ns, Name: name}, nil
}

// MustKeyword is like ParseKeyword but panics on error.
func MustKeyword(s string) Keyword {
	k, err := ParseKeyword(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Qualified reports whether the keyword carries a namespace.
func (k Keyword) Qualified() bool { return k.Namespace != "" }

// IsEmpty reports whether the keyword is the zero value.
func (k Keyword) IsEmpty() bool { return k.Namespace == "" && k.Name == "" }

func (k Keyword) GetNamespace() string { return k.Namespace }
func (k Keyword) GetName() string      { return k.Name }

func (k Keyword) String() string { return join(k.Namespace, k.Name) }

// MarshalText renders the keyword as "namespace/name".
func (k Keyword) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses "namespace/name".
func (k *Keyword) UnmarshalText(data []byte) error {
	parsed, err := ParseKeyword(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Symbol is a possibly namespaced symbolic identifier.
type Symbol struct {
	Namespace string
	Name      string
}

// ParseSymbol parses "name" or "namespace/name".
func ParseSymbol(s string) (Symbol, error) {
	ns, name, err := split(s)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Namespace: ns, Name: name}, nil
}

// Qualified reports whether the symbol carries a namespace.
func (s Symbol) Qualified() bool { return s.Namespace != "" }

func (s Symbol) GetNamespace() string { return s.Namespace }
func (s Symbol) GetName() string      { return s.Name }

func (s Symbol) String() string { return join(s.Namespace, s.Name) }

func split(s string) (string, string, error) {
	// "/" on its own is a valid simple name.
	if s == "/" {
		return "", s, nil
	}
	ns, name, found := strings.Cut(s, "/")
	if !found {
		name, ns = ns, ""
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid identifier %q: %w", s, ErrEmptyName)
	}
	return ns, name, nil
}

func join(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + "/" + name
}
