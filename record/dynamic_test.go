package record_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/bufferrange"
	"github.com/solidcoredata/avrorecord/column"
	"github.com/solidcoredata/avrorecord/record"
)

const dynamicSchemaJSON = `{"type":"record","fields":[
	{"name":"id","type":{"type":"array","items":"long"}},
	{"name":"name","type":{"type":"array","items":"string"}},
	{"name":"column_headers","type":{"type":"array","items":"string"}},
	{"name":"column_datatypes","type":{"type":"array","items":"string"}}
]}`

// buildDynamicBuffer writes two data columns (ids, names), then the
// column_headers block (with a duplicate "name" to exercise mangling), then
// the column_datatypes block.
func buildDynamicBuffer(t *testing.T, ids []int64, names []string, headers []string, datatypes []string) []byte {
	t.Helper()
	size := 0
	size += avro.SizeArrayBlock(len(ids), func(i int) int { return avro.SizeLong(ids[i]) })
	size += avro.SizeArrayBlock(len(names), func(i int) int { return avro.SizeBytes(len(names[i])) })
	size += avro.SizeArrayBlock(len(headers), func(i int) int { return avro.SizeBytes(len(headers[i])) })
	size += avro.SizeArrayBlock(len(datatypes), func(i int) int { return avro.SizeBytes(len(datatypes[i])) })

	buf := make([]byte, size)
	c := avro.NewCursor(buf)
	require.NoError(t, c.WriteArrayBlock(len(ids), func(i int) error { return c.WriteLong(ids[i]) }))
	require.NoError(t, c.WriteArrayBlock(len(names), func(i int) error { return c.WriteBytes([]byte(names[i])) }))
	require.NoError(t, c.WriteArrayBlock(len(headers), func(i int) error { return c.WriteBytes([]byte(headers[i])) }))
	require.NoError(t, c.WriteArrayBlock(len(datatypes), func(i int) error { return c.WriteBytes([]byte(datatypes[i])) }))
	require.Equal(t, len(buf), c.Pos)
	return buf
}

func TestFromDynamicSchemaMangleDuplicateNames(t *testing.T) {
	buf := buildDynamicBuffer(t,
		[]int64{1, 2},
		[]string{"a", "b"},
		[]string{"id", "id"},
		[]string{"long", "string"},
	)
	typ, err := record.FromDynamicSchema(dynamicSchemaJSON, buf)
	require.NoError(t, err)
	require.Equal(t, 2, typ.Len())
	require.Equal(t, "id", typ.Column(0).Name)
	require.Equal(t, "id_2", typ.Column(1).Name)
	require.Equal(t, column.Long, typ.Column(0).Kind)
	require.Equal(t, column.String, typ.Column(1).Kind)
}

func TestDecodeDynamicRecordsZipsColumnsIntoRows(t *testing.T) {
	buf := buildDynamicBuffer(t,
		[]int64{10, 20, 30},
		[]string{"x", "y", "z"},
		[]string{"id", "name"},
		[]string{"long", "string"},
	)
	typ, err := record.FromDynamicSchema(dynamicSchemaJSON, buf)
	require.NoError(t, err)

	records, err := typ.DecodeDynamicRecords(buf, nil)
	require.NoError(t, err)
	require.Len(t, records, 3)

	id, err := records[1].GetByName("id")
	require.NoError(t, err)
	require.Equal(t, int64(20), id)

	name, err := records[2].GetByName("name")
	require.NoError(t, err)
	require.Equal(t, "z", name)
}

func TestDecodeDynamicRecordsRespectsRange(t *testing.T) {
	buf := buildDynamicBuffer(t,
		[]int64{1},
		[]string{"a"},
		[]string{"id", "name"},
		[]string{"long", "string"},
	)
	typ, err := record.FromDynamicSchema(dynamicSchemaJSON, buf)
	require.NoError(t, err)

	rng := &bufferrange.Range{Start: 0, Length: len(buf)}
	records, err := typ.DecodeDynamicRecords(buf, rng)
	require.NoError(t, err)
	require.Len(t, records, 1)
}
