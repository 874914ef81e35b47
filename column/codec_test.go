package column_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/column"
	"github.com/solidcoredata/avrorecord/kdt"
)

func roundTrip(t *testing.T, codec column.Codec, cell column.Cell) column.Cell {
	t.Helper()
	buf := make([]byte, codec.SizeRaw(cell))
	c := avro.NewCursor(buf)
	require.NoError(t, codec.WriteRaw(c, cell))
	require.Equal(t, len(buf), c.Pos)

	c2 := avro.NewCursor(buf)
	got, err := codec.ReadRaw(c2)
	require.NoError(t, err)
	return got
}

func TestBytesCodecRoundTrip(t *testing.T) {
	codec := column.ForKind(column.Bytes)
	got := roundTrip(t, codec, column.Cell{Bytes: []byte{1, 2, 3}})
	require.Equal(t, []byte{1, 2, 3}, got.Bytes)
}

func TestStringCodecMaterializeAndIngest(t *testing.T) {
	codec := column.ForKind(column.String)
	cell, err := codec.Ingest("hello")
	require.NoError(t, err)
	v, err := codec.Materialize(cell)
	require.NoError(t, err)
	require.Equal(t, "hello", v)
}

func TestStringCodecRejectsInvalidUTF8(t *testing.T) {
	codec := column.ForKind(column.String)
	_, err := codec.Ingest(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, column.ErrValueError)
}

func TestCharCodecRejectsOverLengthValue(t *testing.T) {
	codec := column.ForKind(column.Char4)
	_, err := codec.Ingest("toolong")
	require.ErrorIs(t, err, column.ErrValueError)
}

func TestCharCodecAcceptsValueAtCap(t *testing.T) {
	codec := column.ForKind(column.Char4)
	cell, err := codec.Ingest("abcd")
	require.NoError(t, err)
	v, err := codec.Materialize(cell)
	require.NoError(t, err)
	require.Equal(t, "abcd", v)
}

func TestIntCodecRoundTrip(t *testing.T) {
	codec := column.ForKind(column.Int)
	got := roundTrip(t, codec, column.Cell{I32: -12345})
	require.Equal(t, int32(-12345), got.I32)
}

func TestInt8CodecRejectsOutOfRangeOnIngest(t *testing.T) {
	codec := column.ForKind(column.Int8)
	_, err := codec.Ingest(int32(200))
	require.ErrorIs(t, err, column.ErrValueError)
}

func TestInt8CodecAcceptsBoundaryValues(t *testing.T) {
	codec := column.ForKind(column.Int8)
	for _, v := range []int32{-128, 127} {
		cell, err := codec.Ingest(v)
		require.NoError(t, err)
		got := roundTrip(t, codec, cell)
		require.Equal(t, v, got.I32)
	}
}

func TestLongCodecRoundTrip(t *testing.T) {
	codec := column.ForKind(column.Long)
	got := roundTrip(t, codec, column.Cell{I64: 1 << 40})
	require.Equal(t, int64(1<<40), got.I64)
}

func TestDoubleAndFloatCodecs(t *testing.T) {
	d := column.ForKind(column.Double)
	got := roundTrip(t, d, column.Cell{F64: 2.5})
	require.Equal(t, 2.5, got.F64)

	f := column.ForKind(column.Float)
	got = roundTrip(t, f, column.Cell{F32: 1.5})
	require.Equal(t, float32(1.5), got.F32)
}

func TestDateCodecRoundTrip(t *testing.T) {
	codec := column.ForKind(column.Date)
	packed, err := kdt.EncodeDate(2024, 2, 29)
	require.NoError(t, err)
	got := roundTrip(t, codec, column.Cell{I32: packed})
	require.Equal(t, packed, got.I32)

	v, err := codec.Materialize(got)
	require.NoError(t, err)
	require.Equal(t, kdt.Date{Year: 2024, Month: 2, Day: 29, YDay: 60, WDay: 5}, v)
}

func TestDateCodecIngestRejectsInvalidDate(t *testing.T) {
	codec := column.ForKind(column.Date)
	_, err := codec.Ingest(kdt.Date{Year: 2023, Month: 2, Day: 29})
	require.ErrorIs(t, err, column.ErrValueError)
}

func TestDateTimeCodecRoundTrip(t *testing.T) {
	codec := column.ForKind(column.DateTime)
	packed, err := kdt.EncodeDateTime(2024, 2, 29, 12, 30, 45, 123)
	require.NoError(t, err)
	got := roundTrip(t, codec, column.Cell{I64: packed})
	require.Equal(t, packed, got.I64)
}

func TestTimeCodecRoundTrip(t *testing.T) {
	codec := column.ForKind(column.Time)
	packed := kdt.EncodeTime(23, 59, 59, 999)
	got := roundTrip(t, codec, column.Cell{I32: packed})
	require.Equal(t, packed, got.I32)
}

func TestTimestampCodecStoresPackedDatetimeNotEpochMS(t *testing.T) {
	codec := column.ForKind(column.Timestamp)
	epochMS := int64(1700000000123)
	cell, err := codec.Ingest(epochMS)
	require.NoError(t, err)
	require.Equal(t, kdt.EpochMSToDatetime(epochMS), cell.I64)

	v, err := codec.Materialize(cell)
	require.NoError(t, err)
	require.Equal(t, epochMS, v)

	got := roundTrip(t, codec, cell)
	require.Equal(t, cell.I64, got.I64)
}

func TestTimestampCodecRejectsOutOfRangeEpochMS(t *testing.T) {
	codec := column.ForKind(column.Timestamp)
	_, err := codec.Ingest(kdt.MaxEpochMS + 1)
	require.ErrorIs(t, err, column.ErrValueError)
}

func TestKindByNameRoundTripsEveryKind(t *testing.T) {
	for k := column.Bytes; k < column.Kind(21); k++ {
		got, ok := column.KindByName(k.String())
		require.True(t, ok, k.String())
		require.Equal(t, k, got)
	}
}
