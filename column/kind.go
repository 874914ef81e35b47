// Package column implements the per-column wire codec: reading and writing
// a column's raw Avro-encoded cell value, sizing it without writing, and
// converting between the raw cell and the host value a caller sets or reads.
//
// The set of kinds is closed (the record wire format recognizes exactly
// these 21), so dispatch is a plain array indexed by Kind rather than a
// registry.
package column

// Kind identifies one of the fixed set of column data types the record wire
// format supports.
type Kind int

const (
	Bytes Kind = iota
	Char1
	Char2
	Char4
	Char8
	Char16
	Char32
	Char64
	Char128
	Char256
	Date
	DateTime
	Double
	Float
	Int
	Int8
	Int16
	Long
	String
	Time
	Timestamp
	numKinds
)

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

var kindNames = [numKinds]string{
	Bytes:     "bytes",
	Char1:     "char1",
	Char2:     "char2",
	Char4:     "char4",
	Char8:     "char8",
	Char16:    "char16",
	Char32:    "char32",
	Char64:    "char64",
	Char128:   "char128",
	Char256:   "char256",
	Date:      "date",
	DateTime:  "datetime",
	Double:    "double",
	Float:     "float",
	Int:       "int",
	Int8:      "int8",
	Int16:     "int16",
	Long:      "long",
	String:    "string",
	Time:      "time",
	Timestamp: "timestamp",
}

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// KindByName looks up a Kind by its String() form, as used when parsing a
// dynamic schema's column type names.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
