package avro_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/avro"
)

func TestLongRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 63, 64, -64, -65, 1 << 30, -(1 << 30), 1<<62 - 1, -(1 << 62)}
	for _, v := range cases {
		buf := make([]byte, avro.SizeLong(v))
		c := avro.NewCursor(buf)
		require.NoError(t, c.WriteLong(v))
		require.Equal(t, len(buf), c.Pos)

		c2 := avro.NewCursor(buf)
		got, err := c2.ReadLong()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestLongOverflowsAtTenBytes(t *testing.T) {
	buf := make([]byte, 11)
	for i := 0; i < 10; i++ {
		buf[i] = 0xFF
	}
	buf[10] = 0xFF
	c := avro.NewCursor(buf)
	_, err := c.ReadLong()
	require.ErrorIs(t, err, avro.ErrOverflow)
}

func TestLongEOFOnTruncatedVarint(t *testing.T) {
	buf := []byte{0xFF}
	c := avro.NewCursor(buf)
	_, err := c.ReadLong()
	require.ErrorIs(t, err, avro.ErrEOF)
}

func TestIntCapsAtFiveBytes(t *testing.T) {
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = 0xFF
	}
	c := avro.NewCursor(buf)
	_, err := c.ReadInt()
	require.ErrorIs(t, err, avro.ErrOverflow)
}

func TestDoubleRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	c := avro.NewCursor(buf)
	require.NoError(t, c.WriteDouble(3.5))
	c2 := avro.NewCursor(buf)
	v, err := c2.ReadDouble()
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
}

func TestFloatRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	c := avro.NewCursor(buf)
	require.NoError(t, c.WriteFloat(float32(2.25)))
	c2 := avro.NewCursor(buf)
	v, err := c2.ReadFloat()
	require.NoError(t, err)
	require.Equal(t, float32(2.25), v)
}

func TestBytesRoundTrip(t *testing.T) {
	payload := []byte("hello world")
	buf := make([]byte, avro.SizeBytes(len(payload)))
	c := avro.NewCursor(buf)
	require.NoError(t, c.WriteBytes(payload))

	c2 := avro.NewCursor(buf)
	got, err := c2.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestReadBytesNegativeLengthIsOverflow(t *testing.T) {
	buf := make([]byte, avro.SizeLong(-1))
	c := avro.NewCursor(buf)
	require.NoError(t, c.WriteLong(-1))
	c2 := avro.NewCursor(buf)
	_, err := c2.ReadBytes()
	require.ErrorIs(t, err, avro.ErrOverflow)
}

func TestBooleanRejectsNonCanonicalByte(t *testing.T) {
	c := avro.NewCursor([]byte{2})
	_, err := c.ReadBoolean()
	require.ErrorIs(t, err, avro.ErrOverflow)
}

func TestWriteLongEOFWhenBufferTooSmall(t *testing.T) {
	c := avro.NewCursor(make([]byte, 0))
	require.ErrorIs(t, c.WriteLong(1), avro.ErrEOF)
}
