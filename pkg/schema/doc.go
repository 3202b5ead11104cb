// Package schema describes the schema surface consumed by coercion.
//
// Schemas themselves are owned by a validation system; coercion only needs to
// read how a schema identifier is declared. A declaration (a Form) is one of:
//
//	Pred("integer")                            // a primitive predicate
//	And{Forms: []Form{Pred("integer"), ...}}   // a refinement, the first form governs
//	Ref{ID: ident.MustKeyword("user/id")}      // an alias of another schema
//	Nilable{Form: Pred("integer")}             // the inner form, or nil
//	CollOf{Elem: Pred("integer")}              // a sequence of the inner form
//	Or{Forms: ...}                             // alternatives, never inferred
//
// Forms can be written as text and parsed with ParseForm:
//
//	forms, err := schema.ParseFormMap(map[string]string{
//	    "user/age":  "and(nat-int, adult)",
//	    "user/tags": "[keyword]",
//	    "user/boss": "?@user/id",
//	    "user/id":   "uuid",
//	})
//
// Any type satisfying Source can back coercion. Registry is a concurrent
// in-memory implementation that also records declared parents.
package schema
