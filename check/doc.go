// Package check provides the rule-composition algebra of the validation
// engine: validation results, single-property and multi-property rules,
// and the combinators that build complex validators out of simple ones.
//
// Key capabilities:
//   - Result/Error value types with stable field-wise equality
//   - Short-circuiting And/Or composition
//   - AllOf (conjunction) and AnyOf (disjunction with full error aggregation)
//   - OnlyIf conditional gating
//   - Multi-property families: numeric relations, exclusivity, conditional
//     requirement
//
// Rules are pure functions of their inputs. Every combinator returns a new
// rule; receivers are never mutated.
package check
