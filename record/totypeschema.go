package record

import (
	"encoding/json"
	"fmt"
)

// avroBaseTypeForKind is the inverse of defaultKindForAvro/
// dynamicColumnAvroKinds, used to reconstruct the Avro base type a
// column's kind would be carried as in a JSON Avro schema.
var avroBaseTypeForKind = map[string]string{}

func init() {
	for name, kind := range defaultKindForAvro {
		avroBaseTypeForKind[kind.String()] = name
	}
	// Text-framed kinds ride as "string" in the Avro schema; Timestamp
	// rides as "long" since its wire form is a plain epoch-millisecond long.
	for _, name := range []string{"char1", "char2", "char4", "char8", "char16",
		"char32", "char64", "char128", "char256", "date", "datetime", "time"} {
		avroBaseTypeForKind[name] = "string"
	}
	avroBaseTypeForKind["timestamp"] = "long"
	// Int8 and Int16 ride as "int", the same carrier as Int.
	avroBaseTypeForKind["int8"] = "int"
	avroBaseTypeForKind["int16"] = "int"
}

type typeSchemaFieldOut struct {
	Name string      `json:"name"`
	Type interface{} `json:"type"`
}

type typeSchemaDocOut struct {
	Type   string                `json:"type"`
	Name   string                `json:"name"`
	Fields []typeSchemaFieldOut `json:"fields"`
}

// ToTypeSchema reconstructs the JSON Avro schema and per-column properties
// map that FromTypeSchema would need to rebuild an equivalent Type. Every
// column's actual Kind is carried in the properties map, since the base
// Avro schema alone can't distinguish e.g. a char16 column from a plain
// string column.
func (t *Type) ToTypeSchema() (typeSchemaJSON string, properties map[string][]string, err error) {
	doc := typeSchemaDocOut{Type: "record", Name: t.label}
	properties = make(map[string][]string, len(t.columns))

	for _, col := range t.columns {
		baseType, ok := avroBaseTypeForKind[col.Kind.String()]
		if !ok {
			return "", nil, fmt.Errorf("record: column %q: no avro carrier for kind %s", col.Name, col.Kind)
		}
		var fieldType interface{} = baseType
		if col.Nullable {
			fieldType = []string{baseType, "null"}
		}
		doc.Fields = append(doc.Fields, typeSchemaFieldOut{Name: col.Name, Type: fieldType})
		properties[col.Name] = []string{col.Kind.String()}
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", nil, err
	}
	return string(b), properties, nil
}
