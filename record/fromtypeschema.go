package record

import (
	"encoding/json"
	"fmt"

	"github.com/solidcoredata/avrorecord/column"
)

type typeSchemaDoc struct {
	Type   string           `json:"type"`
	Fields []typeSchemaField `json:"fields"`
}

type typeSchemaField struct {
	Name string          `json:"name"`
	Type json.RawMessage `json:"type"`
}

// defaultKindForAvro maps an Avro base type name to the column kind used
// when no overriding property is given for that column.
var defaultKindForAvro = map[string]column.Kind{
	"bytes":  column.Bytes,
	"string": column.String,
	"int":    column.Int,
	"long":   column.Long,
	"double": column.Double,
	"float":  column.Float,
}

// FromTypeSchema builds a Type from a JSON Avro record schema plus a map of
// per-column properties. A column's Avro base type in the schema (or, if
// the schema wraps it in a ["<type>", "null"] union, the non-null half)
// selects its default Kind; a property in properties[name] that names a
// recognized Kind (e.g. "char16", "date") overrides that default, the way
// column metadata layered on top of the base Avro schema does for real
// column types the Avro schema itself cannot express.
func FromTypeSchema(label, typeSchemaJSON string, properties map[string][]string) (*Type, error) {
	var doc typeSchemaDoc
	if err := json.Unmarshal([]byte(typeSchemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("record: could not parse schema: %w", err)
	}
	if doc.Type != "record" {
		return nil, fmt.Errorf("record: schema must be of type record")
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("record: schema must have at least 1 field")
	}

	columns := make([]Column, len(doc.Fields))
	for i, field := range doc.Fields {
		if field.Name == "" {
			return nil, fmt.Errorf("record: field %d has no name", i)
		}

		baseType, nullable, err := parseFieldType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("record: field %q: %w", field.Name, err)
		}

		kind, ok := defaultKindForAvro[baseType]
		if !ok {
			return nil, fmt.Errorf("record: field %q: unsupported avro type %q", field.Name, baseType)
		}
		for _, prop := range properties[field.Name] {
			if k, ok := column.KindByName(prop); ok {
				kind = k
			}
			if prop == "nullable" {
				nullable = true
			}
		}

		columns[i] = Column{Name: field.Name, Kind: kind, Nullable: nullable}
	}

	return New(label, columns)
}

// parseFieldType accepts either a bare Avro type name or a 2-element union
// [<type>, "null"], returning the base type name and whether it was
// nullable.
func parseFieldType(raw json.RawMessage) (baseType string, nullable bool, err error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name, false, nil
	}

	var union []string
	if err := json.Unmarshal(raw, &union); err != nil {
		return "", false, fmt.Errorf("invalid type")
	}
	if len(union) != 2 {
		return "", false, fmt.Errorf("union must have 2 types")
	}
	if union[1] != "null" {
		return "", false, fmt.Errorf("union must have null as second type")
	}
	return union[0], true, nil
}
