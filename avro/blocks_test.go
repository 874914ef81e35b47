package avro_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/avro"
)

func TestForEachBlockPositiveCount(t *testing.T) {
	var buf []byte
	buf = appendLong(buf, 3)
	buf = appendLong(buf, 10)
	buf = appendLong(buf, 20)
	buf = appendLong(buf, 30)
	buf = appendLong(buf, 0)

	c := avro.NewCursor(buf)
	var got []int64
	err := c.ForEachBlock(func() error {
		v, err := c.ReadLong()
		got = append(got, v)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, []int64{10, 20, 30}, got)
	require.Equal(t, len(buf), c.Pos)
}

func TestForEachBlockNegativeCountReadsByteSize(t *testing.T) {
	var inner []byte
	inner = appendLong(inner, 7)
	inner = appendLong(inner, 8)

	var buf []byte
	buf = appendLong(buf, -2)
	buf = appendLong(buf, int64(len(inner)))
	buf = append(buf, inner...)
	buf = appendLong(buf, 0)

	c := avro.NewCursor(buf)
	var got []int64
	err := c.ForEachBlock(func() error {
		v, err := c.ReadLong()
		got = append(got, v)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, []int64{7, 8}, got)
	require.Equal(t, len(buf), c.Pos)
}

func TestWriteArrayBlockEmpty(t *testing.T) {
	buf := make([]byte, avro.SizeArrayBlock(0, nil))
	c := avro.NewCursor(buf)
	require.NoError(t, c.WriteArrayBlock(0, nil))
	require.Equal(t, []byte{0}, buf)
}

func TestWriteArrayBlockSizeMatches(t *testing.T) {
	items := []int64{1, 2, 3}
	size := avro.SizeArrayBlock(len(items), func(i int) int { return avro.SizeLong(items[i]) })
	buf := make([]byte, size)
	c := avro.NewCursor(buf)
	err := c.WriteArrayBlock(len(items), func(i int) error { return c.WriteLong(items[i]) })
	require.NoError(t, err)
	require.Equal(t, size, c.Pos)

	c2 := avro.NewCursor(buf)
	var got []int64
	require.NoError(t, c2.ForEachBlock(func() error {
		v, err := c2.ReadLong()
		got = append(got, v)
		return err
	}))
	require.Equal(t, items, got)
}

func appendLong(buf []byte, v int64) []byte {
	tmp := make([]byte, avro.SizeLong(v))
	c := avro.NewCursor(tmp)
	if err := c.WriteLong(v); err != nil {
		panic(err)
	}
	return append(buf, tmp...)
}
