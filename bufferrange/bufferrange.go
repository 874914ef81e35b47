// Package bufferrange defines BufferRange, a plain (start, length) pair used
// both to select a sub-range of a buffer to decode from and as the decoded
// host value of the schema "object" and "object_array" kinds.
package bufferrange

// Range is a non-owning reference to a sub-slice of some buffer. It holds no
// pointer to the buffer itself; callers are responsible for keeping the
// buffer alive for as long as a Range referring into it is in use.
//
// Length of -1 has no special meaning for Range itself (unlike a record
// cell's length field); it is a plain struct compared by both fields.
type Range struct {
	Start  int
	Length int
}

// End returns Start + Length.
func (r Range) End() int {
	return r.Start + r.Length
}

// Slice returns the portion of buf described by r. The caller must ensure r
// is within bounds of buf.
func (r Range) Slice(buf []byte) []byte {
	return buf[r.Start:r.End()]
}
