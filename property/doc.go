// Package property defines the schema entries of the validation engine:
// immutable property definitions and property groups, each produced by a
// builder. A definition records a property's name, declared type,
// validation rule, default provider, requiredness, category, validation
// dependencies, ordering hint, and deprecation metadata.
//
// Definitions and groups never change after Build; every accessor returns
// copies of internal slices.
package property
