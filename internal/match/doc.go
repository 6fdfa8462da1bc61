// Package match ranks registered property names against a misspelled one
// to produce "did you mean" suggestions for unknown-property errors.
package match
