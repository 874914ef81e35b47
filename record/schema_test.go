package record_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/column"
	"github.com/solidcoredata/avrorecord/record"
)

func TestFromTypeSchemaDefaultsAndOverrides(t *testing.T) {
	schema := `{"type":"record","fields":[
		{"name":"id","type":"long"},
		{"name":"nick","type":["string","null"]},
		{"name":"code","type":"string"}
	]}`
	typ, err := record.FromTypeSchema("widget", schema, map[string][]string{
		"code": {"char4"},
	})
	require.NoError(t, err)
	require.Equal(t, 3, typ.Len())

	require.Equal(t, record.Column{Name: "id", Kind: column.Long}, typ.Column(0))
	require.Equal(t, record.Column{Name: "nick", Kind: column.String, Nullable: true}, typ.Column(1))
	require.Equal(t, record.Column{Name: "code", Kind: column.Char4}, typ.Column(2))
}

func TestFromTypeSchemaRejectsNonRecord(t *testing.T) {
	_, err := record.FromTypeSchema("bad", `{"type":"enum","fields":[]}`, nil)
	require.Error(t, err)
}

func TestToTypeSchemaRoundTrip(t *testing.T) {
	typ, err := record.New("widget", []record.Column{
		{Name: "id", Kind: column.Long},
		{Name: "code", Kind: column.Char4},
	})
	require.NoError(t, err)

	schemaJSON, properties, err := typ.ToTypeSchema()
	require.NoError(t, err)

	back, err := record.FromTypeSchema("widget", schemaJSON, properties)
	require.NoError(t, err)
	require.True(t, typ.Equal(back))
}

func TestBulkEncodeDecodeRecords(t *testing.T) {
	typ, err := record.New("widget", []record.Column{{Name: "id", Kind: column.Long}})
	require.NoError(t, err)

	records := make([]*record.Record, 3)
	for i := range records {
		r := record.NewRecord(typ)
		require.NoError(t, r.SetByName("id", int64(i)))
		records[i] = r
	}

	buffers, err := record.EncodeRecords(records)
	require.NoError(t, err)
	require.Len(t, buffers, 3)

	decoded, err := record.DecodeRecords(typ, buffers)
	require.NoError(t, err)
	for i, r := range decoded {
		v, err := r.GetByName("id")
		require.NoError(t, err)
		require.Equal(t, int64(i), v)
	}
}
