package record

import (
	"fmt"

	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/column"
)

// Record is one row of column values under a Type. A freshly created
// Record has every column at its zero Cell (not SQL-NULL, even for a
// nullable column); callers must Set every column they care about before
// encoding or reading it back.
type Record struct {
	typ   *Type
	cells []column.Cell
}

// NewRecord returns a Record of typ with every cell at its zero value.
func NewRecord(typ *Type) *Record {
	return &Record{typ: typ, cells: make([]column.Cell, typ.Len())}
}

// Type returns the Record's Type.
func (r *Record) Type() *Type { return r.typ }

// Get materializes the host value of column i. It returns (nil, nil) for a
// NULL value in a nullable column.
func (r *Record) Get(i int) (interface{}, error) {
	col := r.typ.columns[i]
	cell := r.cells[i]
	if col.Nullable && cell.Null {
		return nil, nil
	}
	v, err := column.ForKind(col.Kind).Materialize(cell)
	if err != nil {
		return nil, fmt.Errorf("record: column %q: %w", col.Name, err)
	}
	return v, nil
}

// GetByName is Get by column name.
func (r *Record) GetByName(name string) (interface{}, error) {
	i, ok := r.typ.IndexOf(name)
	if !ok {
		return nil, fmt.Errorf("record: no such column %q", name)
	}
	return r.Get(i)
}

// Set ingests a host value into column i. A nil value sets the column to
// SQL-NULL, which is only valid for a nullable column.
func (r *Record) Set(i int, value interface{}) error {
	col := r.typ.columns[i]
	if value == nil {
		if !col.Nullable {
			return fmt.Errorf("record: column %q is not nullable", col.Name)
		}
		r.cells[i] = column.NullCell()
		return nil
	}
	cell, err := column.ForKind(col.Kind).Ingest(value)
	if err != nil {
		return fmt.Errorf("record: column %q: %w", col.Name, err)
	}
	r.cells[i] = cell
	return nil
}

// SetByName is Set by column name.
func (r *Record) SetByName(name string, value interface{}) error {
	i, ok := r.typ.IndexOf(name)
	if !ok {
		return fmt.Errorf("record: no such column %q", name)
	}
	return r.Set(i, value)
}

// Size returns the exact number of bytes Encode would write.
func (r *Record) Size() int {
	size := 0
	for i, col := range r.typ.columns {
		cell := r.cells[i]
		if col.Nullable {
			size++
			if cell.Null {
				continue
			}
		}
		size += column.ForKind(col.Kind).SizeRaw(cell)
	}
	return size
}

// Encode writes the Avro-encoded binary form of the record into c.
func (r *Record) Encode(c *avro.Cursor) error {
	for i, col := range r.typ.columns {
		cell := r.cells[i]
		if col.Nullable {
			if cell.Null {
				if err := c.WriteLong(1); err != nil {
					return err
				}
				continue
			}
			if err := c.WriteLong(0); err != nil {
				return err
			}
		}
		if err := column.ForKind(col.Kind).WriteRaw(c, cell); err != nil {
			return fmt.Errorf("record: column %q: %w", col.Name, err)
		}
	}
	return nil
}

// EncodeBytes is a convenience that allocates a buffer of exactly Size()
// bytes and encodes the record into it.
func (r *Record) EncodeBytes() ([]byte, error) {
	buf := make([]byte, r.Size())
	c := avro.NewCursor(buf)
	if err := r.Encode(c); err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode reads one Avro-encoded record of typ from c.
func Decode(typ *Type, c *avro.Cursor) (*Record, error) {
	r := NewRecord(typ)
	for i, col := range typ.columns {
		if col.Nullable {
			tag, err := c.ReadLong()
			if err != nil {
				return nil, fmt.Errorf("record: column %q: %w", col.Name, err)
			}
			switch tag {
			case 1:
				r.cells[i] = column.NullCell()
				continue
			case 0:
				// fall through to read the value.
			default:
				return nil, fmt.Errorf("record: column %q: %w", col.Name, avro.ErrOverflow)
			}
		}
		cell, err := column.ForKind(col.Kind).ReadRaw(c)
		if err != nil {
			return nil, fmt.Errorf("record: column %q: %w", col.Name, err)
		}
		r.cells[i] = cell
	}
	return r, nil
}

// DecodeBytes decodes one record of typ from the start of buf.
func DecodeBytes(typ *Type, buf []byte) (*Record, error) {
	return Decode(typ, avro.NewCursor(buf))
}
