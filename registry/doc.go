// Package registry collects property definitions and groups into a frozen,
// queryable schema. Build verifies that every declared validation
// dependency exists and that the dependency graph is acyclic (Kahn's
// algorithm), then freezes the schema into an immutable Registry that is
// safe for unlimited concurrent readers.
//
// Build failures are schema-authoring defects and surface as errors; no
// partial registry is ever returned.
package registry
