package column

// Cell is the raw, wire-shaped storage for one column value in one record.
// Which fields are meaningful depends on the column's Kind: Bytes backs the
// variable-length kinds (bytes, charN, string), I32 backs the 32-bit kinds
// (date, time, int, int8, int16), I64 backs the 64-bit kinds (datetime,
// timestamp's packed-datetime storage, long), and F32/F64 back float/double.
//
// Go's garbage collector makes an inline-vs-heap storage split for small vs
// large charN columns unnecessary; every variable-length kind is a plain
// owned []byte here.
type Cell struct {
	Null  bool
	Bytes []byte
	I32   int32
	I64   int64
	F32   float32
	F64   float64
}

// NullCell returns a Cell representing SQL-NULL. Only meaningful for
// nullable columns; the codec for a non-nullable column never produces or
// accepts one.
func NullCell() Cell {
	return Cell{Null: true}
}
