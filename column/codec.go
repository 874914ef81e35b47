package column

import "github.com/solidcoredata/avrorecord/avro"

// Codec reads, writes, sizes, and converts the raw cell value for one
// column kind. Implementations hold no per-column state beyond a fixed
// capacity (e.g. a charN codec's maximum length); RecordType shares one
// Codec instance across every column of the same kind.
type Codec interface {
	Kind() Kind

	// ReadRaw decodes one Avro-encoded value from c into a Cell. The caller
	// has already consumed any nullability tag.
	ReadRaw(c *avro.Cursor) (Cell, error)

	// WriteRaw encodes cell's Avro wire form into c.
	WriteRaw(c *avro.Cursor, cell Cell) error

	// SizeRaw returns the exact number of bytes WriteRaw would produce for
	// cell, without writing.
	SizeRaw(cell Cell) int

	// Materialize converts a decoded Cell into the Go host value a caller
	// works with (string, []byte, int32, int64, float32, float64, or a
	// github.com/solidcoredata/avrorecord/kdt value).
	Materialize(cell Cell) (interface{}, error)

	// Ingest converts a caller-supplied host value into a Cell ready for
	// WriteRaw/SizeRaw. It returns ErrTypeMismatch for the wrong Go type and
	// ErrValueError for a value that is the right type but out of range.
	Ingest(value interface{}) (Cell, error)
}

var codecs [numKinds]Codec

func init() {
	codecs[Bytes] = bytesCodec{}
	codecs[Char1] = charCodec{kind: Char1, maxLen: 1}
	codecs[Char2] = charCodec{kind: Char2, maxLen: 2}
	codecs[Char4] = charCodec{kind: Char4, maxLen: 4}
	codecs[Char8] = charCodec{kind: Char8, maxLen: 8}
	codecs[Char16] = charCodec{kind: Char16, maxLen: 16}
	codecs[Char32] = charCodec{kind: Char32, maxLen: 32}
	codecs[Char64] = charCodec{kind: Char64, maxLen: 64}
	codecs[Char128] = charCodec{kind: Char128, maxLen: 128}
	codecs[Char256] = charCodec{kind: Char256, maxLen: 256}
	codecs[Date] = dateCodec{}
	codecs[DateTime] = dateTimeCodec{}
	codecs[Double] = doubleCodec{}
	codecs[Float] = floatCodec{}
	codecs[Int] = intCodec{kind: Int}
	codecs[Int8] = intCodec{kind: Int8, lo: -128, hi: 127, bounded: true}
	codecs[Int16] = intCodec{kind: Int16, lo: -32768, hi: 32767, bounded: true}
	codecs[Long] = longCodec{}
	codecs[String] = charCodec{kind: String, maxLen: 0}
	codecs[Time] = timeCodec{}
	codecs[Timestamp] = timestampCodec{}
}

// ForKind returns the Codec for k. The caller must only pass a Kind for
// which Valid() is true.
func ForKind(k Kind) Codec {
	return codecs[k]
}
