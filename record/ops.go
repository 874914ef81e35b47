package record

import (
	"bytes"
	"fmt"

	"github.com/solidcoredata/avrorecord/column"
)

// GetSlice materializes columns [start, end) in order, the indexed-range
// counterpart to Get/GetByName.
func (r *Record) GetSlice(start, end int) ([]interface{}, error) {
	if start < 0 || end > r.typ.Len() || start > end {
		return nil, fmt.Errorf("record: slice [%d:%d] out of bounds", start, end)
	}
	values := make([]interface{}, end-start)
	for i := start; i < end; i++ {
		v, err := r.Get(i)
		if err != nil {
			return nil, err
		}
		values[i-start] = v
	}
	return values, nil
}

// SetSlice ingests values into columns [start, start+len(values)), the
// indexed-range counterpart to Set/SetByName.
func (r *Record) SetSlice(start int, values []interface{}) error {
	end := start + len(values)
	if start < 0 || end > r.typ.Len() {
		return fmt.Errorf("record: slice [%d:%d] out of bounds", start, end)
	}
	for i, v := range values {
		if err := r.Set(start+i, v); err != nil {
			return err
		}
	}
	return nil
}

// Update ingests values from either a map keyed by column name or a
// positional sequence aligned with the Type's column order. Any other shape
// is an error.
func (r *Record) Update(values interface{}) error {
	switch v := values.(type) {
	case map[string]interface{}:
		for name, value := range v {
			if err := r.SetByName(name, value); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		return r.SetSlice(0, v)
	default:
		return fmt.Errorf("record: update requires a map[string]interface{} or []interface{}, got %T", values)
	}
}

// AsMap materializes every column into a map keyed by column name.
func (r *Record) AsMap() (map[string]interface{}, error) {
	m := make(map[string]interface{}, r.typ.Len())
	for i := 0; i < r.typ.Len(); i++ {
		v, err := r.Get(i)
		if err != nil {
			return nil, err
		}
		m[r.typ.columns[i].Name] = v
	}
	return m, nil
}

// Equal reports whether r and other share the same Type and have identical
// raw cell values, column by column.
func (r *Record) Equal(other *Record) bool {
	if r == other {
		return true
	}
	if other == nil || !r.typ.Equal(other.typ) {
		return false
	}
	for i, cell := range r.cells {
		if !cellEqual(cell, other.cells[i]) {
			return false
		}
	}
	return true
}

func cellEqual(a, b column.Cell) bool {
	return a.Null == b.Null &&
		bytes.Equal(a.Bytes, b.Bytes) &&
		a.I32 == b.I32 &&
		a.I64 == b.I64 &&
		a.F32 == b.F32 &&
		a.F64 == b.F64
}
