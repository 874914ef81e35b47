package column

import "github.com/solidcoredata/avrorecord/avro"

type doubleCodec struct{}

func (doubleCodec) Kind() Kind { return Double }

func (doubleCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	v, err := c.ReadDouble()
	if err != nil {
		return Cell{}, err
	}
	return Cell{F64: v}, nil
}

func (doubleCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	return c.WriteDouble(cell.F64)
}

func (doubleCodec) SizeRaw(Cell) int { return 8 }

func (doubleCodec) Materialize(cell Cell) (interface{}, error) {
	return cell.F64, nil
}

func (doubleCodec) Ingest(value interface{}) (Cell, error) {
	v, ok := value.(float64)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	return Cell{F64: v}, nil
}

type floatCodec struct{}

func (floatCodec) Kind() Kind { return Float }

func (floatCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	v, err := c.ReadFloat()
	if err != nil {
		return Cell{}, err
	}
	return Cell{F32: v}, nil
}

func (floatCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	return c.WriteFloat(cell.F32)
}

func (floatCodec) SizeRaw(Cell) int { return 4 }

func (floatCodec) Materialize(cell Cell) (interface{}, error) {
	return cell.F32, nil
}

func (floatCodec) Ingest(value interface{}) (Cell, error) {
	v, ok := value.(float32)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	return Cell{F32: v}, nil
}

// intCodec implements Int (unbounded int32), Int8, and Int16. The wire
// representation is always a zig-zag varint int32; Int8/Int16 additionally
// range-check on both the read and ingest paths.
type intCodec struct {
	kind    Kind
	lo, hi  int32
	bounded bool
}

func (ic intCodec) Kind() Kind { return ic.kind }

func (ic intCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	v, err := c.ReadInt()
	if err != nil {
		return Cell{}, err
	}
	if ic.bounded && (v < ic.lo || v > ic.hi) {
		return Cell{}, avro.ErrOverflow
	}
	return Cell{I32: v}, nil
}

func (ic intCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	return c.WriteInt(cell.I32)
}

func (ic intCodec) SizeRaw(cell Cell) int {
	return avro.SizeLong(int64(cell.I32))
}

func (ic intCodec) Materialize(cell Cell) (interface{}, error) {
	return cell.I32, nil
}

func (ic intCodec) Ingest(value interface{}) (Cell, error) {
	v, ok := value.(int32)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	if ic.bounded && (v < ic.lo || v > ic.hi) {
		return Cell{}, ErrValueError
	}
	return Cell{I32: v}, nil
}

type longCodec struct{}

func (longCodec) Kind() Kind { return Long }

func (longCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	v, err := c.ReadLong()
	if err != nil {
		return Cell{}, err
	}
	return Cell{I64: v}, nil
}

func (longCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	return c.WriteLong(cell.I64)
}

func (longCodec) SizeRaw(cell Cell) int {
	return avro.SizeLong(cell.I64)
}

func (longCodec) Materialize(cell Cell) (interface{}, error) {
	return cell.I64, nil
}

func (longCodec) Ingest(value interface{}) (Cell, error) {
	v, ok := value.(int64)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	return Cell{I64: v}, nil
}
