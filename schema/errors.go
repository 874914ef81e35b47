// Package schema implements a recursive schema tree (Node) for encoding
// and decoding values more loosely structured than a fixed record: nested
// arrays, maps, nullable wrappers, and opaque nested objects captured as a
// BufferRange rather than materialized.
//
// Decoding is single-pass, directly from a byte buffer to host values.
// Encoding is two-pass: Prepare walks the host value tree once, validating
// it and computing its exact encoded size, and returns a value whose Write
// method streams the already-validated tree into a pre-sized buffer without
// revisiting error cases.
package schema

import "errors"

// ErrTypeMismatch is returned when a host value's Go type does not match
// what a node's Kind expects.
var ErrTypeMismatch = errors.New("schema: value has wrong type")

// ErrValueError is returned when a host value has the right type but is
// invalid: invalid UTF-8 in a string, the wrong number of map/record
// entries, and so on.
var ErrValueError = errors.New("schema: invalid value")

// ErrLookup is returned when a record field name or map key required by the
// schema is missing from the supplied host value.
var ErrLookup = errors.New("schema: missing field or key")
