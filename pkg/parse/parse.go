// Package parse provides the primitive string parsers used by coercions.
//
// Every parser has the signature func(any) (any, error). Input that is not a
// string is returned unchanged, so parsers are safe to apply to values that
// were already coerced.
package parse

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aretw0/coerce/pkg/ident"
)

// Error reports a string that could not be parsed as its target type.
type Error struct {
	Target string // Target type name, e.g. "int64"
	Input  string // The rejected input
	Err    error  // Underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Target)
	}
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Target, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KeywordMarker prefixes keyword literals, as in ":user/age".
const KeywordMarker = ":"

// instantLayouts are tried in order by Instant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Identity returns its input.
func Identity(x any) (any, error) { return x, nil }

// Int64 parses a base 10 signed 64-bit integer.
func Int64(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, &Error{Target: "int64", Input: s, Err: unwrapNum(err)}
	}
	return n, nil
}

// Float64 parses a 64-bit floating point number.
func Float64(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &Error{Target: "float64", Input: s, Err: unwrapNum(err)}
	}
	return f, nil
}

// Decimal parses an arbitrary-precision decimal.
func Decimal(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, &Error{Target: "decimal", Input: s, Err: err}
	}
	return d, nil
}

// Bool recognizes exactly "true" and "false". Other strings are returned as is.
func Bool(x any) (any, error) {
	switch x {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return x, nil
	}
}

// UUID parses the canonical textual UUID forms accepted by google/uuid.
func UUID(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, &Error{Target: "uuid", Input: s, Err: err}
	}
	return id, nil
}

// URI parses a URI reference.
func URI(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, &Error{Target: "uri", Input: s, Err: err}
	}
	return u, nil
}

// Instant parses an RFC 3339 timestamp, a zone-less timestamp (read as UTC)
// or a bare date.
func Instant(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	var lastErr error
	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return nil, &Error{Target: "instant", Input: s, Err: lastErr}
}

// Keyword parses a keyword, with or without the leading marker.
func Keyword(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	k, err := ident.ParseKeyword(strings.TrimPrefix(s, KeywordMarker))
	if err != nil {
		return nil, &Error{Target: "keyword", Input: s, Err: err}
	}
	return k, nil
}

// Symbol parses a symbol.
func Symbol(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	sym, err := ident.ParseSymbol(s)
	if err != nil {
		return nil, &Error{Target: "symbol", Input: s, Err: err}
	}
	return sym, nil
}

// Ident parses a keyword when the marker is present and a symbol otherwise.
func Ident(x any) (any, error) {
	s, ok := x.(string)
	if !ok {
		return x, nil
	}
	if strings.HasPrefix(s, KeywordMarker) {
		return Keyword(s)
	}
	return Symbol(s)
}

// Nil maps "nil" to nil. Other strings are returned as is.
func Nil(x any) (any, error) {
	if x == "nil" {
		return nil, nil
	}
	return x, nil
}

// strconv errors repeat the input; keep only the reason.
func unwrapNum(err error) error {
	if numErr, ok := err.(*strconv.NumError); ok {
		return numErr.Err
	}
	return err
}
