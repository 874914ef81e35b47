// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avro implements the Avro binary primitive encoding used as the
// wire form for the record and schema packages: zig-zag varint integers,
// little-endian IEEE floats, length-prefixed byte strings, booleans, and the
// ASCII helpers the text-encoded column kinds (date, time, datetime) build
// on.
//
// Every read/write operates on a Cursor, a mutable position paired with an
// immutable limit over a caller-owned byte slice. Failure leaves the cursor
// at an unspecified position between where it started and the limit, and
// never yields a partial value.
package avro

import "errors"

// ErrEOF indicates the buffer was exhausted before a value could be read or
// written in full.
var ErrEOF = errors.New("avro: unexpected end of buffer")

// ErrOverflow indicates a value outside its valid range, an invalid tag
// byte, an unrecognized enum marker, or a varint that ran past its maximum
// byte count.
var ErrOverflow = errors.New("avro: invalid binary data")

// ErrOOM indicates a variable-length buffer allocation failed. No function
// in this module returns it: Go's allocator panics on failure rather than
// returning an error.
var ErrOOM = errors.New("avro: out of memory")
