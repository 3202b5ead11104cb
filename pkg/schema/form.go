package schema

import (
	"strings"

	"github.com/aretw0/coerce/pkg/ident"
)

// Form is a read-only schema declaration.
type Form interface {
	// String returns the text syntax accepted by ParseForm.
	String() string
	isForm()
}

// Pred references a primitive predicate by name, e.g. "integer" or "uuid".
type Pred string

// And is a conjunction. Only its first form drives coercion.
type And struct {
	Forms []Form
}

// Or is a set of alternatives.
type Or struct {
	Forms []Form
}

// Ref refers to another schema identifier.
type Ref struct {
	ID ident.Keyword
}

// Nilable accepts nil or the inner form.
type Nilable struct {
	Form Form
}

// CollOf is a homogeneous sequence of Elem.
type CollOf struct {
	Elem Form
}

func (Pred) isForm()    {}
func (And) isForm()     {}
func (Or) isForm()      {}
func (Ref) isForm()     {}
func (Nilable) isForm() {}
func (CollOf) isForm()  {}

func (p Pred) String() string { return string(p) }

func (a And) String() string { return "and(" + joinForms(a.Forms) + ")" }

func (o Or) String() string { return "or(" + joinForms(o.Forms) + ")" }

func (r Ref) String() string { return refMarker + r.ID.String() }

func (n Nilable) String() string { return nilableMarker + formString(n.Form) }

func (c CollOf) String() string { return "[" + formString(c.Elem) + "]" }

// Governing returns the subform that drives coercion of a conjunction.
func (a And) Governing() (Form, bool) {
	if len(a.Forms) == 0 {
		return nil, false
	}
	return a.Forms[0], true
}

// NewRef is shorthand for a reference to the parsed identifier.
func NewRef(id string) Ref {
	return Ref{ID: ident.MustKeyword(id)}
}

// NewAnd builds a conjunction.
func NewAnd(forms ...Form) And {
	return And{Forms: forms}
}

// NewOr builds a set of alternatives.
func NewOr(forms ...Form) Or {
	return Or{Forms: forms}
}

func joinForms(forms []Form) string {
	parts := make([]string, len(forms))
	for i, f := range forms {
		parts[i] = formString(f)
	}
	return strings.Join(parts, ", ")
}

func formString(f Form) string {
	if f == nil {
		return ""
	}
	return f.String()
}
