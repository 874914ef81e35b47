package schema

import "fmt"

// Kind identifies the shape one Node describes.
type Kind int

const (
	Nullable Kind = iota
	Boolean
	Bytes
	Double
	Float
	Int
	Long
	String
	Array
	Map
	Record
	Object
	ObjectArray
)

func (k Kind) String() string {
	switch k {
	case Nullable:
		return "nullable"
	case Boolean:
		return "boolean"
	case Bytes:
		return "bytes"
	case Double:
		return "double"
	case Float:
		return "float"
	case Int:
		return "int"
	case Long:
		return "long"
	case String:
		return "string"
	case Array:
		return "array"
	case Map:
		return "map"
	case Record:
		return "record"
	case Object:
		return "object"
	case ObjectArray:
		return "object_array"
	default:
		return "invalid"
	}
}

// Node is one node of a schema tree.
//
//   - Nullable wraps exactly one child; the encoded value is either the
//     child's value or null.
//   - Array wraps exactly one child describing its item type.
//   - Map wraps exactly one child describing its value type; keys are
//     always strings.
//   - Record has one child per field; every field child must have Name set.
//   - Boolean, Bytes, Double, Float, Int, Long, String, Object, and
//     ObjectArray are leaves and must have no children.
//
// Object and ObjectArray are read-vs-write asymmetric: decoding produces a
// bufferrange.Range (or, for ObjectArray, a slice of them) pointing at the
// still-undecoded bytes, since the caller - not the schema - knows which
// further schema or record type to decode them with; encoding takes the
// caller's own pre-encoded bytes ([]byte, or [][]byte for ObjectArray)
// rather than threading a live (sub-schema, value) pair through Prepare.
type Node struct {
	Kind       Kind
	Name       string
	Default    interface{}
	HasDefault bool
	Children   []*Node
}

// Validate checks that the tree rooted at n is well-formed: every Kind has
// the right number of children, every Record field has a name and no two
// sibling fields share one, and every Record field's Default (if any) is a
// value Prepare would accept.
func (n *Node) Validate() error {
	return n.validate("$")
}

func (n *Node) validate(path string) error {
	switch n.Kind {
	case Nullable, Array, Map:
		if len(n.Children) != 1 {
			return fmt.Errorf("schema: %s: %s must have exactly 1 child", path, n.Kind)
		}
	case Record:
		if len(n.Children) == 0 {
			return fmt.Errorf("schema: %s: record must have at least 1 field", path)
		}
		seen := make(map[string]bool, len(n.Children))
		for _, f := range n.Children {
			if f.Name == "" {
				return fmt.Errorf("schema: %s: record field has no name", path)
			}
			if seen[f.Name] {
				return fmt.Errorf("schema: %s: duplicate field name %q", path, f.Name)
			}
			seen[f.Name] = true
		}
	default:
		if len(n.Children) != 0 {
			return fmt.Errorf("schema: %s: %s must have no children", path, n.Kind)
		}
	}

	for _, c := range n.Children {
		childPath := path + "." + c.Name
		if n.Kind == Array {
			childPath = path + "[]"
		} else if n.Kind == Map {
			childPath = path + "{}"
		} else if n.Kind == Nullable {
			childPath = path
		}
		if err := c.validate(childPath); err != nil {
			return err
		}
	}

	if n.Kind == Record {
		for _, f := range n.Children {
			if !f.HasDefault {
				continue
			}
			if _, err := f.Prepare(f.Default); err != nil {
				return fmt.Errorf("schema: %s.%s: invalid default: %w", path, f.Name, err)
			}
		}
	}

	return nil
}

// child returns n's single child (for Nullable, Array, Map).
func (n *Node) child() *Node {
	return n.Children[0]
}
