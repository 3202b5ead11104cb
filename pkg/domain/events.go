package domain

import "github.com/aretw0/coerce/pkg/ident"

// EventType defines the category of the event.
type EventType string

const (
	EventResolve      EventType = "resolve"
	EventParseFailure EventType = "parse_failure"
	EventCycle        EventType = "cycle"
)

// ResolveEvent is emitted each time a coercion function is resolved for a value.
type ResolveEvent struct {
	Type   EventType
	ID     ident.Keyword
	Source ResolutionSource
}

// FailureEvent is emitted when a coercion fails or a reference cycle is found.
type FailureEvent struct {
	Type   EventType
	ID     ident.Keyword
	Target string // Parser target for parse failures, empty otherwise
	Err    error
}

// Hooks defines callbacks for coercion observability.
// Every field is optional.
type Hooks struct {
	OnResolve func(*ResolveEvent)
	OnFailure func(*FailureEvent)
}
