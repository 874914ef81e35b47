package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solidcoredata/avrorecord/bufferrange"
	"github.com/solidcoredata/avrorecord/schema"
)

func recordNode() *schema.Node {
	return &schema.Node{
		Kind: schema.Record,
		Children: []*schema.Node{
			{Kind: schema.Long, Name: "id"},
			{Kind: schema.String, Name: "name"},
			{Kind: schema.Nullable, Name: "nickname", Children: []*schema.Node{
				{Kind: schema.String},
			}},
		},
	}
}

func TestRecordPrepareDecodeRoundTrip(t *testing.T) {
	n := recordNode()
	require.NoError(t, n.Validate())

	value := map[string]interface{}{
		"id":       int64(7),
		"name":     "ada",
		"nickname": nil,
	}
	prepared, err := n.Prepare(value)
	require.NoError(t, err)

	buf, err := prepared.EncodeBytes()
	require.NoError(t, err)
	require.Equal(t, prepared.Size(), len(buf))

	got, consumed, err := schema.Decode(n, buf, bufferrange.Range{Start: 0, Length: len(buf)})
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed.Length)
	require.Equal(t, value, got)
}

func TestRecordMissingFieldUsesDefault(t *testing.T) {
	n := recordNode()
	n.Children[2].HasDefault = true
	n.Children[2].Default = "anon"

	value := map[string]interface{}{"id": int64(1), "name": "bob"}
	prepared, err := n.Prepare(value)
	require.NoError(t, err)
	buf, err := prepared.EncodeBytes()
	require.NoError(t, err)

	got, _, err := schema.Decode(n, buf, bufferrange.Range{Start: 0, Length: len(buf)})
	require.NoError(t, err)
	require.Equal(t, "anon", got.(map[string]interface{})["nickname"])
}

func TestRecordMissingFieldWithoutDefaultFails(t *testing.T) {
	n := recordNode()
	_, err := n.Prepare(map[string]interface{}{"id": int64(1), "name": "bob"})
	require.ErrorIs(t, err, schema.ErrLookup)
}

func TestValidateRejectsWrongChildCount(t *testing.T) {
	n := &schema.Node{Kind: schema.Array}
	require.Error(t, n.Validate())
}

func TestValidateRejectsDuplicateRecordFieldNames(t *testing.T) {
	n := &schema.Node{Kind: schema.Record, Children: []*schema.Node{
		{Kind: schema.Long, Name: "a"},
		{Kind: schema.Long, Name: "a"},
	}}
	require.Error(t, n.Validate())
}

func TestArrayAndMapRoundTrip(t *testing.T) {
	arr := &schema.Node{Kind: schema.Array, Children: []*schema.Node{{Kind: schema.Long}}}
	prepared, err := arr.Prepare([]interface{}{int64(1), int64(2), int64(3)})
	require.NoError(t, err)
	buf, err := prepared.EncodeBytes()
	require.NoError(t, err)
	got, _, err := schema.Decode(arr, buf, bufferrange.Range{Start: 0, Length: len(buf)})
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, got)

	m := &schema.Node{Kind: schema.Map, Children: []*schema.Node{{Kind: schema.String}}}
	prepared, err = m.Prepare(map[string]interface{}{"b": "2", "a": "1"})
	require.NoError(t, err)
	buf, err = prepared.EncodeBytes()
	require.NoError(t, err)
	got, _, err = schema.Decode(m, buf, bufferrange.Range{Start: 0, Length: len(buf)})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"a": "1", "b": "2"}, got)
}

func TestObjectAndObjectArrayReturnBufferRanges(t *testing.T) {
	payload := []byte("pre-encoded-bytes")
	obj := &schema.Node{Kind: schema.Object}
	prepared, err := obj.Prepare(payload)
	require.NoError(t, err)
	buf, err := prepared.EncodeBytes()
	require.NoError(t, err)

	got, _, err := schema.Decode(obj, buf, bufferrange.Range{Start: 0, Length: len(buf)})
	require.NoError(t, err)
	rng := got.(bufferrange.Range)
	require.Equal(t, payload, rng.Slice(buf))

	arr := &schema.Node{Kind: schema.ObjectArray}
	items := [][]byte{[]byte("a"), []byte("bb")}
	prepared, err = arr.Prepare(items)
	require.NoError(t, err)
	buf, err = prepared.EncodeBytes()
	require.NoError(t, err)

	got, _, err = schema.Decode(arr, buf, bufferrange.Range{Start: 0, Length: len(buf)})
	require.NoError(t, err)
	ranges := got.([]bufferrange.Range)
	require.Len(t, ranges, 2)
	require.Equal(t, items[0], ranges[0].Slice(buf))
	require.Equal(t, items[1], ranges[1].Slice(buf))
}

func TestPrepareRejectsTypeMismatch(t *testing.T) {
	n := &schema.Node{Kind: schema.Long}
	_, err := n.Prepare("not a long")
	require.ErrorIs(t, err, schema.ErrTypeMismatch)
}

func TestPrepareRejectsInvalidUTF8String(t *testing.T) {
	n := &schema.Node{Kind: schema.String}
	_, err := n.Prepare(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, schema.ErrValueError)
}
