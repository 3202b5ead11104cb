package runtime

import (
	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/parse"
	"github.com/aretw0/coerce/pkg/schema"
)

// Predicate names understood by inference.
const (
	PredNumber           schema.Pred = "number"
	PredInteger          schema.Pred = "integer"
	PredInt              schema.Pred = "int"
	PredPosInt           schema.Pred = "pos-int"
	PredNegInt           schema.Pred = "neg-int"
	PredNatInt           schema.Pred = "nat-int"
	PredZero             schema.Pred = "zero"
	PredFloat            schema.Pred = "float"
	PredDouble           schema.Pred = "double"
	PredBoolean          schema.Pred = "boolean"
	PredTrue             schema.Pred = "true"
	PredFalse            schema.Pred = "false"
	PredIdent            schema.Pred = "ident"
	PredSimpleIdent      schema.Pred = "simple-ident"
	PredQualifiedIdent   schema.Pred = "qualified-ident"
	PredKeyword          schema.Pred = "keyword"
	PredSimpleKeyword    schema.Pred = "simple-keyword"
	PredQualifiedKeyword schema.Pred = "qualified-keyword"
	PredSymbol           schema.Pred = "symbol"
	PredSimpleSymbol     schema.Pred = "simple-symbol"
	PredQualifiedSymbol  schema.Pred = "qualified-symbol"
	PredUUID             schema.Pred = "uuid"
	PredInst             schema.Pred = "inst"
	PredNil              schema.Pred = "nil"
	PredURI              schema.Pred = "uri"
	PredDecimal          schema.Pred = "decimal"
)

// predicates is never mutated. Extension goes through Register.
var predicates = map[schema.Pred]domain.Coercion{
	PredNumber: parse.Float64,

	PredInteger: parse.Int64,
	PredInt:     parse.Int64,
	PredPosInt:  parse.Int64,
	PredNegInt:  parse.Int64,
	PredNatInt:  parse.Int64,
	PredZero:    parse.Int64,

	PredFloat:  parse.Float64,
	PredDouble: parse.Float64,

	PredBoolean: parse.Bool,
	PredTrue:    parse.Bool,
	PredFalse:   parse.Bool,

	PredIdent:          parse.Ident,
	PredSimpleIdent:    parse.Ident,
	PredQualifiedIdent: parse.Ident,

	PredKeyword:          parse.Keyword,
	PredSimpleKeyword:    parse.Keyword,
	PredQualifiedKeyword: parse.Keyword,

	PredSymbol:          parse.Symbol,
	PredSimpleSymbol:    parse.Symbol,
	PredQualifiedSymbol: parse.Symbol,

	PredUUID:    parse.UUID,
	PredInst:    parse.Instant,
	PredNil:     parse.Nil,
	PredURI:     parse.URI,
	PredDecimal: parse.Decimal,
}

// PredicateCoercion returns the parser for a predicate name, or the identity
// coercion and false when the predicate is unknown.
func PredicateCoercion(p schema.Pred) (domain.Coercion, bool) {
	fn, ok := predicates[p]
	if !ok {
		return domain.Identity, false
	}
	return fn, true
}

// Predicates lists every predicate name known to inference.
func Predicates() []schema.Pred {
	out := make([]schema.Pred, 0, len(predicates))
	for p := range predicates {
		out = append(out, p)
	}
	return out
}
