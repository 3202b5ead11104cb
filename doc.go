/*
Package coerce turns string-typed input into typed values according to
declared schemas.

Values arriving from query strings, form posts or environment variables are
strings. Given a schema identifier such as "user/age", coerce finds a function
that converts the string into what the schema expects: an int64, a bool, a
uuid.UUID, a time.Time, an ident.Keyword and so on. It never validates; when no
conversion is known, or the input is not a string, the value is returned unchanged.

# Resolution

A coercion for an identifier is resolved in three tiers:

  - Registry: a coercion registered with Register, for the identifier itself or
    for one of its parents.
  - Inference: the schema's declared form is reduced to a governing predicate
    ("integer", "uuid", "inst", ...) which selects a parser from pkg/parse.
  - Identity: the value is left as is.

# Usage

	reg := schema.NewRegistry().
		MustDefine("user/age", schema.MustParseForm("and(nat-int, adult)")).
		MustDefine("user/id", schema.Pred("uuid"))

	c := coerce.New(reg, coerce.WithLogger(logger))

	v, err := c.CoerceValue(ident.MustKeyword("user/age"), "30") // int64(30)

	out, err := c.CoerceStructure(map[string]any{
		"user/id":  "550e8400-e29b-41d4-a716-446655440000",
		"user/age": "30",
	})

A process-wide Coercer backed by the Schemas registry is available through the
package-level functions Register, CoerceValue, CoerceStructure, CoerceQuery and
Decode. SetDefault swaps it, which keeps tests isolated.
*/
package coerce
