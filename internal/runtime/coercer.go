package runtime

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/parse"
	"github.com/aretw0/coerce/pkg/schema"
)

// Coercer resolves coercion functions for schema identifiers and applies them.
// It owns the registry of explicit coercions; forms are read from a schema.Source.
type Coercer struct {
	source schema.Source

	mu        sync.RWMutex
	coercions map[ident.Keyword]domain.Coercion

	hooks        domain.Hooks
	logger       *slog.Logger
	onFieldError domain.FieldErrorHandler
}

// Option configures a Coercer.
type Option func(*Coercer)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Coercer) {
		c.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coercer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFieldErrorHandler installs a handler consulted when a field fails to
// coerce during a structure walk.
func WithFieldErrorHandler(h domain.FieldErrorHandler) Option {
	return func(c *Coercer) {
		c.onFieldError = h
	}
}

// NewCoercer creates a coercer reading forms from source.
// A nil source behaves as an empty one.
func NewCoercer(source schema.Source, opts ...Option) *Coercer {
	if source == nil {
		source = schema.NewRegistry()
	}
	c := &Coercer{
		source:    source,
		coercions: make(map[ident.Keyword]domain.Coercion),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Source returns the schema source the coercer reads from.
func (c *Coercer) Source() schema.Source {
	return c.source
}

// CoerceValue coerces x using the coercion resolved for id.
func (c *Coercer) CoerceValue(id ident.Keyword, x any) (any, error) {
	out, err := c.Resolve(id)(x)
	if err != nil {
		c.emitFailure(id, err)
		return nil, err
	}
	return out, nil
}

// CoerceForm coerces x using the coercion inferred directly from form.
// It is the entry point for bare predicates such as schema.Pred("integer").
func (c *Coercer) CoerceForm(form schema.Form, x any) (any, error) {
	return c.InferForm(form)(x)
}

func (c *Coercer) emitResolve(id ident.Keyword, source domain.ResolutionSource) {
	c.logger.Debug("coercion resolved", "schema", id.String(), "source", string(source))
	if c.hooks.OnResolve != nil {
		c.hooks.OnResolve(&domain.ResolveEvent{Type: domain.EventResolve, ID: id, Source: source})
	}
}

func (c *Coercer) emitFailure(id ident.Keyword, err error) {
	event := &domain.FailureEvent{Type: domain.EventParseFailure, ID: id, Err: err}
	var perr *parse.Error
	if errors.As(err, &perr) {
		event.Target = perr.Target
	}
	c.logger.Debug("coercion failed", "schema", id.String(), "error", err)
	if c.hooks.OnFailure != nil {
		c.hooks.OnFailure(event)
	}
}

func (c *Coercer) emitCycle(id ident.Keyword, err error) {
	c.logger.Warn("schema reference cycle, falling back to identity", "schema", id.String(), "error", err)
	if c.hooks.OnFailure != nil {
		c.hooks.OnFailure(&domain.FailureEvent{Type: domain.EventCycle, ID: id, Err: err})
	}
}
