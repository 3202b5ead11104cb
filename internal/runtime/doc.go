/*
Package runtime implements coercion resolution and the structure walker.

Resolving a coercion for a schema identifier goes through three tiers:

 1. The explicit registry, following parent schemas when the identifier has no entry.
 2. Inference from the schema's declared form: references are dereferenced and
    conjunctions reduced to their first subform until a predicate is reached,
    which is then looked up in a fixed predicate table.
 3. The identity coercion.

Both walks keep the identifiers they visited, so a cyclic schema graph ends
in the identity coercion (and a warning) rather than an endless loop.
*/
package runtime
