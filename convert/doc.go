// Package convert turns raw string property values into typed Go values.
//
// A Converter is an explicit, injected parse-function table keyed by type
// tag. There is no process-wide singleton: construct one with NewConverter
// and pass it wherever typed access is needed. Register extends a Converter
// with caller-defined tags.
package convert
