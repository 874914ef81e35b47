package column

import "errors"

// ErrTypeMismatch is returned by Ingest when the supplied host value's Go
// type does not match what the column kind expects.
var ErrTypeMismatch = errors.New("column: value has wrong type for column")

// ErrValueError is returned by Ingest when the supplied host value has the
// right type but an out-of-range or otherwise invalid value (a string too
// long for its char column, a date field out of range, a timestamp outside
// the representable span).
var ErrValueError = errors.New("column: value out of range for column")
