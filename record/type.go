// Package record implements RecordType (an ordered, named column layout)
// and Record (one row of column values under a RecordType), plus the
// Avro-encoded binary wire form both read and write.
package record

import "fmt"

import "github.com/solidcoredata/avrorecord/column"

// Column describes one column of a RecordType: its name, wire/host kind,
// and whether it may hold SQL-NULL.
type Column struct {
	Name     string
	Kind     column.Kind
	Nullable bool
}

// Type is an immutable, ordered set of columns with a name-to-index
// lookup. Every Record is created against exactly one Type, and every
// Record built from it has the same column layout.
type Type struct {
	label   string
	columns []Column
	index   map[string]int
}

// New builds a Type directly from an explicit column list. Column names
// must be non-empty and unique; there must be at least one column.
func New(label string, columns []Column) (*Type, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("record: type %q must have at least 1 column", label)
	}
	cols := append([]Column(nil), columns...)
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("record: type %q: column %d has empty name", label, i)
		}
		if !c.Kind.Valid() {
			return nil, fmt.Errorf("record: type %q: column %q has invalid kind", label, c.Name)
		}
		if _, exists := index[c.Name]; exists {
			return nil, fmt.Errorf("record: type %q: duplicate column name %q", label, c.Name)
		}
		index[c.Name] = i
	}
	return &Type{label: label, columns: cols, index: index}, nil
}

// Label returns the type's informational label, as passed to New or
// FromTypeSchema. A Type built by FromDynamicSchema has an empty label.
func (t *Type) Label() string { return t.label }

// Len returns the number of columns.
func (t *Type) Len() int { return len(t.columns) }

// Column returns the column at position i.
func (t *Type) Column(i int) Column { return t.columns[i] }

// IndexOf returns the position of the column named name, if any.
func (t *Type) IndexOf(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Equal reports whether t and other have the same label and describe the
// same columns, in the same order, with the same nullability.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if other == nil || t.label != other.label || len(t.columns) != len(other.columns) {
		return false
	}
	for i, c := range t.columns {
		o := other.columns[i]
		if c.Name != o.Name || c.Kind != o.Kind || c.Nullable != o.Nullable {
			return false
		}
	}
	return true
}
