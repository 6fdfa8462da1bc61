// Package rules is the catalog of stateless single-property predicates:
// string shape checks, numeric bounds, and filesystem checks. Each
// constructor returns a check.Rule, so catalog rules compose freely with
// the check combinators.
package rules
