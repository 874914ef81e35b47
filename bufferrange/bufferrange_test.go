package bufferrange_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/bufferrange"
)

func TestRangeEndAndSlice(t *testing.T) {
	buf := []byte("hello world")
	r := bufferrange.Range{Start: 6, Length: 5}
	require.Equal(t, 11, r.End())
	require.Equal(t, "world", string(r.Slice(buf)))
}

func TestRangeEquality(t *testing.T) {
	a := bufferrange.Range{Start: 1, Length: 2}
	b := bufferrange.Range{Start: 1, Length: 2}
	require.Equal(t, a, b)
}
