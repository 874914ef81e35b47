package record

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/bufferrange"
	"github.com/solidcoredata/avrorecord/column"
)

// DecodeDynamicRecords decodes the records in the Avro-encoded binary data
// a dynamic-schema endpoint returns: one blocked array per column (laid out
// column-major, in the Type's column order), rather than one Avro record
// per row. If rng is nil the whole of buf is used; otherwise only the
// sub-range it describes is read, and any trailing bytes in rng beyond the
// last column's data are ignored.
func (t *Type) DecodeDynamicRecords(buf []byte, rng *bufferrange.Range) ([]*Record, error) {
	start, end := 0, len(buf)
	if rng != nil {
		if rng.Start < 0 || rng.Start > len(buf) {
			return nil, fmt.Errorf("record: range start out of bounds")
		}
		start = rng.Start
		end = rng.End()
		if end < start || end > len(buf) {
			return nil, fmt.Errorf("record: range end out of bounds")
		}
	}
	c := &avro.Cursor{Buf: buf, Pos: start, Max: end}

	columnCells := make([][]column.Cell, t.Len())
	for i, col := range t.columns {
		codec := column.ForKind(col.Kind)
		var cells []column.Cell
		nullable := col.Nullable
		if err := c.ForEachBlock(func() error {
			if nullable {
				tag, err := c.ReadLong()
				if err != nil {
					return err
				}
				if tag == 1 {
					cells = append(cells, column.NullCell())
					return nil
				}
				if tag != 0 {
					return avro.ErrOverflow
				}
			}
			cell, err := codec.ReadRaw(c)
			if err != nil {
				return err
			}
			cells = append(cells, cell)
			return nil
		}); err != nil {
			return nil, fmt.Errorf("record: column %q: %w", col.Name, err)
		}
		columnCells[i] = cells
	}

	rowCount := 0
	if len(columnCells) > 0 {
		rowCount = len(columnCells[0])
	}
	for i, cells := range columnCells {
		if len(cells) != rowCount {
			return nil, fmt.Errorf("record: column %q has %d values, expected %d", t.columns[i].Name, len(cells), rowCount)
		}
	}

	records := make([]*Record, rowCount)
	var g errgroup.Group
	for row := 0; row < rowCount; row++ {
		row := row
		g.Go(func() error {
			cells := make([]column.Cell, t.Len())
			for i := range columnCells {
				cells[i] = columnCells[i][row]
			}
			records[row] = &Record{typ: t, cells: cells}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
