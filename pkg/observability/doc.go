/*
Package observability exposes coercion activity as prometheus metrics.

The metrics are fed through domain.Hooks, so any Coercer built with
coerce.WithHooks(m.Hooks()) reports how each value was resolved and which
parsers rejected their input.
*/
package observability
