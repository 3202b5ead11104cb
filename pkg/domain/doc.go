/*
Package domain contains the core types shared by the coercion runtime, its
facade and its adapters.

It is kept free of I/O and of any knowledge about where schemas come from.

# Key Entities

  - Coercion: a function turning a raw value into a more specific one.
  - Record: a mapping with an out-of-band metadata side channel.
  - Hooks: observability callbacks fired while resolving and coercing.
  - CycleError, ErrInvalidIdentifier: the errors raised by the runtime itself.
*/
package domain
