package record

import (
	"encoding/json"
	"fmt"

	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/column"
)

// dynamicSchemaDoc is the JSON Avro schema shape a dynamic-schema endpoint
// returns: field_count columns each typed "array of <base type>" (or
// nullable union thereof), followed by a column_headers field (array of
// string, the actual column names) and a column_datatypes field (array of
// string, the actual column kinds).
type dynamicSchemaDoc struct {
	Type   string                   `json:"type"`
	Fields []dynamicSchemaFieldDecl `json:"fields"`
}

type dynamicSchemaFieldDecl struct {
	Name string             `json:"name"`
	Type dynamicSchemaArray `json:"type"`
}

type dynamicSchemaArray struct {
	Type  string          `json:"type"`
	Items json.RawMessage `json:"items"`
}

// dynamicColumnAvroKinds are the only base Avro types a dynamic schema's
// column array may declare; these are exactly the kinds that survive
// unmodified if column_datatypes doesn't override them.
var dynamicColumnAvroKinds = map[string]column.Kind{
	"bytes":  column.Bytes,
	"double": column.Double,
	"float":  column.Float,
	"int":    column.Int,
	"long":   column.Long,
	"string": column.String,
}

// FromDynamicSchema builds a Type from a dynamic-schema endpoint's JSON
// Avro schema text and the accompanying sample-data buffer (the same
// columnar buffer shape that DecodeDynamicRecords later decodes for real;
// here its per-column arrays are skipped over, not materialized, since the
// schema only needs the column names and data types).
func FromDynamicSchema(schemaJSON string, buf []byte) (*Type, error) {
	var doc dynamicSchemaDoc
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("record: could not parse schema: %w", err)
	}
	if doc.Type != "record" {
		return nil, fmt.Errorf("record: schema must be of type record")
	}
	if len(doc.Fields) < 3 {
		return nil, fmt.Errorf("record: schema must have at least 3 fields")
	}
	fieldCount := len(doc.Fields) - 2

	columns := make([]Column, fieldCount)
	c := avro.NewCursor(buf)

	for i := 0; i < fieldCount; i++ {
		field := doc.Fields[i]
		if field.Type.Type != "array" {
			return nil, fmt.Errorf("record: field %q must be of type array", field.Name)
		}
		baseType, nullable, err := parseFieldType(field.Type.Items)
		if err != nil {
			return nil, fmt.Errorf("record: field %q: %w", field.Name, err)
		}
		kind, ok := dynamicColumnAvroKinds[baseType]
		if !ok {
			return nil, fmt.Errorf("record: field %q: invalid data type %q", field.Name, baseType)
		}
		columns[i] = Column{Kind: kind, Nullable: nullable}

		codec := column.ForKind(kind)
		if err := c.ForEachBlock(func() error {
			if nullable {
				tag, err := c.ReadLong()
				if err != nil {
					return err
				}
				if tag == 1 {
					return nil
				}
				if tag != 0 {
					return avro.ErrOverflow
				}
			}
			_, err := codec.ReadRaw(c)
			return err
		}); err != nil {
			return nil, fmt.Errorf("record: field %q: %w", field.Name, err)
		}
	}

	headersField := doc.Fields[fieldCount]
	if headersField.Type.Type != "array" || string(headersField.Type.Items) != `"string"` {
		return nil, fmt.Errorf("record: column_headers field must be of type array of string")
	}

	fieldNameSet := make(map[string]bool, fieldCount)
	i := 0
	if err := c.ForEachBlock(func() error {
		if i >= fieldCount {
			return fmt.Errorf("column_headers field has too many values")
		}
		name, err := c.ReadBytes()
		if err != nil {
			return err
		}
		n := string(name)
		columns[i].Name = n
		fieldNameSet[n] = true
		i++
		return nil
	}); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if i != fieldCount {
		return nil, fmt.Errorf("record: column_headers field has too few values")
	}

	// Mangle duplicate names: the first occurrence of a name keeps it; any
	// later column with the same name gets "_2", "_3", ... appended, trying
	// each candidate against both the names read from column_headers and
	// the names already assigned so far.
	columnNameSet := make(map[string]bool, fieldCount)
	for i := range columns {
		name := columns[i].Name
		if !columnNameSet[name] {
			columnNameSet[name] = true
			continue
		}
		for n := 2; ; n++ {
			candidate := fmt.Sprintf("%s_%d", name, n)
			if !fieldNameSet[candidate] && !columnNameSet[candidate] {
				columns[i].Name = candidate
				columnNameSet[candidate] = true
				break
			}
		}
	}

	datatypesField := doc.Fields[fieldCount+1]
	if datatypesField.Type.Type != "array" || string(datatypesField.Type.Items) != `"string"` {
		return nil, fmt.Errorf("record: column_datatypes field must be of type array of string")
	}

	i = 0
	if err := c.ForEachBlock(func() error {
		if i >= fieldCount {
			return fmt.Errorf("column_datatypes field has too many values")
		}
		name, err := c.ReadBytes()
		if err != nil {
			return err
		}
		if k, ok := column.KindByName(string(name)); ok {
			columns[i].Kind = k
		}
		i++
		return nil
	}); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	if i != fieldCount {
		return nil, fmt.Errorf("record: column_datatypes field has too few values")
	}

	return New("", columns)
}
