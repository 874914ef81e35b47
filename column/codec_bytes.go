package column

import (
	"unicode/utf8"

	"github.com/solidcoredata/avrorecord/avro"
)

type bytesCodec struct{}

func (bytesCodec) Kind() Kind { return Bytes }

func (bytesCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	b, err := c.ReadBytes()
	if err != nil {
		return Cell{}, err
	}
	return Cell{Bytes: append([]byte(nil), b...)}, nil
}

func (bytesCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	return c.WriteBytes(cell.Bytes)
}

func (bytesCodec) SizeRaw(cell Cell) int {
	return avro.SizeBytes(len(cell.Bytes))
}

func (bytesCodec) Materialize(cell Cell) (interface{}, error) {
	return cell.Bytes, nil
}

func (bytesCodec) Ingest(value interface{}) (Cell, error) {
	b, ok := value.([]byte)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	return Cell{Bytes: b}, nil
}

// charCodec implements the CharN kinds (a fixed-capacity UTF-8 string) and,
// with maxLen == 0, the unbounded String kind. A "small" (N<=8, inline) vs
// "large" (N>8, heap) storage split would only matter for a manually-managed
// memory layout; both collapse to the same length-capped byte-slice handling
// here under a garbage-collected runtime.
type charCodec struct {
	kind   Kind
	maxLen int
}

func (cc charCodec) Kind() Kind { return cc.kind }

func (cc charCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	b, err := c.ReadBytes()
	if err != nil {
		return Cell{}, err
	}
	if cc.maxLen > 0 && len(b) > cc.maxLen {
		return Cell{}, avro.ErrOverflow
	}
	return Cell{Bytes: append([]byte(nil), b...)}, nil
}

func (cc charCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	return c.WriteBytes(cell.Bytes)
}

func (cc charCodec) SizeRaw(cell Cell) int {
	return avro.SizeBytes(len(cell.Bytes))
}

func (cc charCodec) Materialize(cell Cell) (interface{}, error) {
	if !utf8.Valid(cell.Bytes) {
		return nil, ErrValueError
	}
	return string(cell.Bytes), nil
}

func (cc charCodec) Ingest(value interface{}) (Cell, error) {
	s, ok := value.(string)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	if !utf8.ValidString(s) {
		return Cell{}, ErrValueError
	}
	b := []byte(s)
	if cc.maxLen > 0 && len(b) > cc.maxLen {
		return Cell{}, ErrValueError
	}
	return Cell{Bytes: b}, nil
}
