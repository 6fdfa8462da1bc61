// Package validate orchestrates rule evaluation against a frozen
// registry. The Validator runs per-property checks in the registry's
// topological order (missing-required, type conversion, then the
// definition's rule) and every group's multi-property rules, aggregating
// all failures into one Result without short-circuiting across
// independent checks.
//
// Cached wraps any Validator with a bounded, TTL-aware memo keyed by a
// fingerprint of the input map. The cache is the only mutable shared
// state in the engine and supports concurrent use; under contention the
// same input may be validated more than once before the first result
// lands, which is harmless because validation is pure.
package validate
