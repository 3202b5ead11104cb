package coerce

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/aretw0/coerce/internal/runtime"
	"github.com/aretw0/coerce/pkg/domain"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

// Coercer is the high-level entry point of the library.
// It wraps the internal runtime and provides a simplified API for consumers.
// Safe for concurrent use.
type Coercer struct {
	runtime      *runtime.Coercer
	hooks        domain.Hooks
	logger       *slog.Logger
	onFieldError domain.FieldErrorHandler
}

// Option defines a functional option for configuring the Coercer.
type Option func(*Coercer)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Coercer) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coercer) {
		c.logger = logger
	}
}

// WithFieldErrorHandler lets CoerceStructure recover from individual field
// failures instead of aborting the whole walk.
func WithFieldErrorHandler(h domain.FieldErrorHandler) Option {
	return func(c *Coercer) {
		c.onFieldError = h
	}
}

// New creates a Coercer reading schema forms from source.
// A nil source behaves as an empty schema registry.
func New(source schema.Source, opts ...Option) *Coercer {
	c := &Coercer{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c.runtime = runtime.NewCoercer(source,
		runtime.WithHooks(c.hooks),
		runtime.WithLogger(c.logger),
		runtime.WithFieldErrorHandler(c.onFieldError),
	)
	return c
}

// Register binds fn to a namespaced schema identifier, overriding inference.
// It fails with domain.ErrInvalidIdentifier when id has no namespace.
func (c *Coercer) Register(id ident.Keyword, fn domain.Coercion) (ident.Keyword, error) {
	return c.runtime.Register(id, fn)
}

// MustRegister is like Register but parses id and panics on error.
// Intended for setup code.
func (c *Coercer) MustRegister(id string, fn domain.Coercion) ident.Keyword {
	k, err := c.Register(ident.MustKeyword(id), fn)
	if err != nil {
		panic(err)
	}
	return k
}

// CoerceValue coerces x according to the schema id.
// Non-string values and values without a known coercion come back unchanged.
func (c *Coercer) CoerceValue(id ident.Keyword, x any) (any, error) {
	return c.runtime.CoerceValue(id, x)
}

// CoerceForm coerces x using a form directly, e.g. schema.Pred("uuid").
func (c *Coercer) CoerceForm(form schema.Form, x any) (any, error) {
	return c.runtime.CoerceForm(form, x)
}

// CoerceStructure coerces every mapping value inside x, using each mapping's
// keys as schema identifiers.
func (c *Coercer) CoerceStructure(x any) (any, error) {
	return c.runtime.CoerceStructure(x)
}

// Resolve returns the coercion that CoerceValue would apply for id.
func (c *Coercer) Resolve(id ident.Keyword) domain.Coercion {
	return c.runtime.Resolve(id)
}

// Lookup returns the explicitly registered coercion for id or one of its parents.
func (c *Coercer) Lookup(id ident.Keyword) (domain.Coercion, bool) {
	return c.runtime.Lookup(id)
}

// ParentOf returns the schema id inherits registered coercions from.
func (c *Coercer) ParentOf(id ident.Keyword) (ident.Keyword, bool) {
	return c.runtime.ParentOf(id)
}

// GoverningForm returns the form that drives inference for id.
// Unlike the coercion paths, it reports reference cycles as *domain.CycleError.
func (c *Coercer) GoverningForm(id ident.Keyword) (schema.Form, bool, error) {
	return c.runtime.GoverningForm(id)
}

// Source returns the schema source.
func (c *Coercer) Source() schema.Source {
	return c.runtime.Source()
}

// --- Default instance ---

// Schemas is the schema registry behind the default Coercer.
var Schemas = schema.NewRegistry()

var defaultCoercer atomic.Pointer[Coercer]

func init() {
	defaultCoercer.Store(New(Schemas))
}

// Default returns the process-wide Coercer used by the package-level functions.
func Default() *Coercer {
	return defaultCoercer.Load()
}

// SetDefault replaces the process-wide Coercer. Tests can use it to inject
// an isolated instance.
func SetDefault(c *Coercer) {
	if c == nil {
		panic("coerce: SetDefault with nil Coercer")
	}
	defaultCoercer.Store(c)
}

// Register binds fn to id on the default Coercer.
func Register(id ident.Keyword, fn domain.Coercion) (ident.Keyword, error) {
	return Default().Register(id, fn)
}

// CoerceValue coerces x with the default Coercer.
func CoerceValue(id ident.Keyword, x any) (any, error) {
	return Default().CoerceValue(id, x)
}

// CoerceStructure walks x with the default Coercer.
func CoerceStructure(x any) (any, error) {
	return Default().CoerceStructure(x)
}
