package schema

import (
	"sort"
	"strings"

	"github.com/aretw0/coerce/pkg/ident"
)

const (
	refMarker     = "@"
	nilableMarker = "?"
)

// ParseForm converts the text syntax into a Form.
//
//	integer          Pred
//	[integer]        CollOf
//	?integer         Nilable
//	@user/id         Ref
//	and(int, pos)    And
//	or(uuid, nil)    Or
func ParseForm(text string) (Form, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, &FormError{Input: text, Reason: "empty form"}
	}

	switch {
	case strings.HasPrefix(s, nilableMarker):
		inner, err := ParseForm(s[len(nilableMarker):])
		if err != nil {
			return nil, err
		}
		return Nilable{Form: inner}, nil

	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		elem, err := ParseForm(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}
		return CollOf{Elem: elem}, nil

	case strings.HasPrefix(s, refMarker):
		id, err := ident.ParseKeyword(s[len(refMarker):])
		if err != nil {
			return nil, &FormError{Input: text, Reason: err.Error()}
		}
		return Ref{ID: id}, nil
	}

	if name, args, ok := call(s); ok {
		forms, err := parseArgs(text, args)
		if err != nil {
			return nil, err
		}
		switch name {
		case "and":
			return And{Forms: forms}, nil
		case "or":
			return Or{Forms: forms}, nil
		default:
			return nil, &FormError{Input: text, Reason: "unknown combinator " + name}
		}
	}

	if strings.ContainsAny(s, " \t()[],@") {
		return nil, &FormError{Input: text, Reason: "malformed predicate name"}
	}
	return Pred(s), nil
}

// MustParseForm is like ParseForm but panics on error.
func MustParseForm(text string) Form {
	f, err := ParseForm(text)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseFormMap converts a map of identifiers to form text into a Schema.
// All malformed entries are reported together.
// Example: {"user/age": "nat-int", "user/tags": "[keyword]"}
func ParseFormMap(formMap map[string]string) (Schema, error) {
	keys := make([]string, 0, len(formMap))
	for k := range formMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make(Schema, len(formMap))
	var errs []error
	for _, key := range keys {
		id, err := ident.ParseKeyword(key)
		if err != nil {
			errs = append(errs, &DefinitionError{ID: key, Err: err})
			continue
		}
		f, err := ParseForm(formMap[key])
		if err != nil {
			errs = append(errs, &DefinitionError{ID: key, Err: err})
			continue
		}
		result[id] = f
	}

	if len(errs) > 0 {
		return nil, &AggregateError{Errors: errs}
	}
	return result, nil
}

// call splits "name(args)" into its parts.
func call(s string) (string, string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	return s[:open], s[open+1 : len(s)-1], true
}

// parseArgs parses a comma separated list, splitting only at depth zero.
func parseArgs(text, args string) ([]Form, error) {
	var (
		forms []Form
		depth int
		start int
	)
	flush := func(end int) error {
		f, err := ParseForm(args[start:end])
		if err != nil {
			return err
		}
		forms = append(forms, f)
		return nil
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, &FormError{Input: text, Reason: "unbalanced brackets"}
			}
		case ',':
			if depth == 0 {
				if err := flush(i); err != nil {
					return nil, err
				}
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, &FormError{Input: text, Reason: "unbalanced brackets"}
	}
	if strings.TrimSpace(args) == "" {
		return nil, &FormError{Input: text, Reason: "combinator needs at least one form"}
	}
	if err := flush(len(args)); err != nil {
		return nil, err
	}
	return forms, nil
}
