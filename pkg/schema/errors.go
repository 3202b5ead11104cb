package schema

import "fmt"

// FormError reports form text that could not be parsed.
type FormError struct {
	Input  string // The rejected text
	Reason string // Human-readable reason
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form %q: %s", e.Input, e.Reason)
}

// DefinitionError wraps a failure to define a single schema.
type DefinitionError struct {
	ID  string
	Err error
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("schema %s: %v", e.ID, e.Err)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

// AggregateError represents multiple definition failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d schema errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// DefinitionErrors returns all failures if err is an AggregateError.
// Otherwise returns nil.
func DefinitionErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
