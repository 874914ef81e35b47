package avro

import "math"

// Cursor is a mutable position paired with an immutable limit over a
// caller-owned byte slice. Buf is never resized by a Cursor method; the
// caller guarantees it outlives every call that takes a *Cursor.
type Cursor struct {
	Buf []byte
	Pos int
	Max int
}

// NewCursor returns a Cursor over the whole of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{Buf: buf, Pos: 0, Max: len(buf)}
}

// Remaining reports the number of unread/unwritten bytes between Pos and Max.
func (c *Cursor) Remaining() int {
	return c.Max - c.Pos
}

// ReadBoolean reads a single Avro boolean byte (0 or 1).
func (c *Cursor) ReadBoolean() (bool, error) {
	if c.Pos+1 > c.Max {
		return false, ErrEOF
	}
	b := c.Buf[c.Pos]
	if b != 0 && b != 1 {
		return false, ErrOverflow
	}
	c.Pos++
	return b == 1, nil
}

// WriteBoolean writes a single Avro boolean byte.
func (c *Cursor) WriteBoolean(b bool) error {
	if c.Pos+1 > c.Max {
		return ErrEOF
	}
	if b {
		c.Buf[c.Pos] = 1
	} else {
		c.Buf[c.Pos] = 0
	}
	c.Pos++
	return nil
}

// ReadLong reads a zig-zag, base-128 varint-encoded 64-bit signed integer.
func (c *Cursor) ReadLong() (int64, error) {
	maxOffset := c.Max - c.Pos
	if maxOffset > 10 {
		maxOffset = 10
	}
	var value uint64
	var b byte
	offset := 0
	for {
		if offset == maxOffset {
			if offset == 10 {
				return 0, ErrOverflow
			}
			return 0, ErrEOF
		}
		b = c.Buf[c.Pos+offset]
		value |= uint64(b&0x7F) << (7 * uint(offset))
		offset++
		if b&0x80 == 0 {
			break
		}
	}
	c.Pos += offset
	return int64(value>>1) ^ -(int64(value & 1)), nil
}

// ReadInt reads a zig-zag, base-128 varint-encoded 32-bit signed integer.
// The wire form is identical to ReadLong's but is capped at 5 bytes and the
// decoded value is truncated to 32 bits, matching Avro's "int" primitive.
func (c *Cursor) ReadInt() (int32, error) {
	maxOffset := c.Max - c.Pos
	if maxOffset > 5 {
		maxOffset = 5
	}
	var value uint32
	var b byte
	offset := 0
	for {
		if offset == maxOffset {
			if offset == 5 {
				return 0, ErrOverflow
			}
			return 0, ErrEOF
		}
		b = c.Buf[c.Pos+offset]
		value |= uint32(b&0x7F) << (7 * uint(offset))
		offset++
		if b&0x80 == 0 {
			break
		}
	}
	c.Pos += offset
	return int32(value>>1) ^ -(int32(value & 1)), nil
}

// WriteLong writes v as a zig-zag, base-128 varint.
func (c *Cursor) WriteLong(v int64) error {
	var buf [10]byte
	n := (uint64(v) << 1) ^ uint64(v>>63)
	written := 0
	for n&^0x7F != 0 {
		buf[written] = byte(n&0x7F) | 0x80
		n >>= 7
		written++
	}
	buf[written] = byte(n)
	written++
	if c.Pos+written > c.Max {
		return ErrEOF
	}
	copy(c.Buf[c.Pos:], buf[:written])
	c.Pos += written
	return nil
}

// WriteInt writes v as a zig-zag, base-128 varint using the same wire
// encoding as WriteLong.
func (c *Cursor) WriteInt(v int32) error {
	return c.WriteLong(int64(v))
}

// SizeLong returns the exact number of bytes WriteLong would produce for v,
// without writing anything.
func SizeLong(v int64) int {
	n := (uint64(v) << 1) ^ uint64(v>>63)
	size := 1
	for n&^0x7F != 0 {
		size++
		n >>= 7
	}
	return size
}

// ReadDouble reads 8 little-endian IEEE 754 bytes.
func (c *Cursor) ReadDouble() (float64, error) {
	if c.Pos+8 > c.Max {
		return 0, ErrEOF
	}
	bits := leUint64(c.Buf[c.Pos : c.Pos+8])
	c.Pos += 8
	return math.Float64frombits(bits), nil
}

// WriteDouble writes v as 8 little-endian IEEE 754 bytes.
func (c *Cursor) WriteDouble(v float64) error {
	if c.Pos+8 > c.Max {
		return ErrEOF
	}
	putLeUint64(c.Buf[c.Pos:c.Pos+8], math.Float64bits(v))
	c.Pos += 8
	return nil
}

// ReadFloat reads 4 little-endian IEEE 754 bytes.
func (c *Cursor) ReadFloat() (float32, error) {
	if c.Pos+4 > c.Max {
		return 0, ErrEOF
	}
	bits := leUint32(c.Buf[c.Pos : c.Pos+4])
	c.Pos += 4
	return math.Float32frombits(bits), nil
}

// WriteFloat writes v as 4 little-endian IEEE 754 bytes.
func (c *Cursor) WriteFloat(v float32) error {
	if c.Pos+4 > c.Max {
		return ErrEOF
	}
	putLeUint32(c.Buf[c.Pos:c.Pos+4], math.Float32bits(v))
	c.Pos += 4
	return nil
}

// ReadBytesLen reads the varint length header of an Avro bytes/string value
// and validates it is non-negative and fits before Max, without consuming
// the payload.
func (c *Cursor) ReadBytesLen() (int, error) {
	n, err := c.ReadLong()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrOverflow
	}
	if int64(c.Pos)+n > int64(c.Max) {
		return 0, ErrEOF
	}
	return int(n), nil
}

// ReadBytes reads an Avro bytes value: a varint length followed by that many
// raw bytes. The returned slice aliases Cursor.Buf; callers that need to
// retain it past the lifetime of the underlying buffer must copy it.
func (c *Cursor) ReadBytes() ([]byte, error) {
	n, err := c.ReadBytesLen()
	if err != nil {
		return nil, err
	}
	b := c.Buf[c.Pos : c.Pos+n]
	c.Pos += n
	return b, nil
}

// WriteBytes writes an Avro bytes value: a varint length followed by b.
func (c *Cursor) WriteBytes(b []byte) error {
	if err := c.WriteLong(int64(len(b))); err != nil {
		return err
	}
	if c.Pos+len(b) > c.Max {
		return ErrEOF
	}
	copy(c.Buf[c.Pos:], b)
	c.Pos += len(b)
	return nil
}

// SizeBytes returns the exact encoded size of an Avro bytes value of length n.
func SizeBytes(n int) int {
	return SizeLong(int64(n)) + n
}

// SkipBytes advances past an Avro bytes/string value without returning it.
func (c *Cursor) SkipBytes() error {
	n, err := c.ReadBytesLen()
	if err != nil {
		return err
	}
	c.Pos += n
	return nil
}

// SkipLong advances past a varint-encoded long.
func (c *Cursor) SkipLong() error {
	_, err := c.ReadLong()
	return err
}

// SkipInt advances past a varint-encoded int.
func (c *Cursor) SkipInt() error {
	_, err := c.ReadInt()
	return err
}

// SkipDouble advances past 8 bytes.
func (c *Cursor) SkipDouble() error {
	if c.Pos+8 > c.Max {
		return ErrEOF
	}
	c.Pos += 8
	return nil
}

// SkipFloat advances past 4 bytes.
func (c *Cursor) SkipFloat() error {
	if c.Pos+4 > c.Max {
		return ErrEOF
	}
	c.Pos += 4
	return nil
}

func leUint64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func putLeUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

func leUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLeUint32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
