// Package defaults resolves conditional default values and merges them
// into user-supplied property maps.
//
// Providers come in five forms: Static, Computed, ComputedCached (bounded
// fingerprint memo), conditional override chains built with Chain/When
// (last-registered override wins), and None. The Applier walks a frozen
// registry, fills in defaults for absent properties without ever touching
// a user-supplied value, and reports which properties were defaulted.
package defaults
