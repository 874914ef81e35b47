package schema

import (
	"fmt"

	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/bufferrange"
)

// Decode reads one value of n's shape from buf, starting at rng.Start and
// extending at most rng.Length bytes. It returns the decoded host value and
// the range actually consumed (a prefix of rng).
func Decode(n *Node, buf []byte, rng bufferrange.Range) (interface{}, bufferrange.Range, error) {
	if rng.Start < 0 || rng.Start > len(buf) || rng.End() > len(buf) || rng.Length < 0 {
		return nil, bufferrange.Range{}, fmt.Errorf("schema: range out of bounds")
	}
	c := &avro.Cursor{Buf: buf, Pos: rng.Start, Max: rng.End()}
	v, err := n.decode(c)
	if err != nil {
		return nil, bufferrange.Range{}, err
	}
	return v, bufferrange.Range{Start: rng.Start, Length: c.Pos - rng.Start}, nil
}

func (n *Node) decode(c *avro.Cursor) (interface{}, error) {
	switch n.Kind {
	case Nullable:
		tag, err := c.ReadLong()
		if err != nil {
			return nil, err
		}
		switch tag {
		case 1:
			return nil, nil
		case 0:
			return n.child().decode(c)
		default:
			return nil, avro.ErrOverflow
		}

	case Boolean:
		return c.ReadBoolean()

	case Bytes:
		b, err := c.ReadBytes()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), b...), nil

	case Double:
		return c.ReadDouble()

	case Float:
		return c.ReadFloat()

	case Int:
		return c.ReadInt()

	case Long:
		return c.ReadLong()

	case String:
		b, err := c.ReadBytes()
		if err != nil {
			return nil, err
		}
		return string(b), nil

	case Array:
		var items []interface{}
		err := c.ForEachBlock(func() error {
			v, err := n.child().decode(c)
			if err != nil {
				return err
			}
			items = append(items, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []interface{}{}
		}
		return items, nil

	case Map:
		m := make(map[string]interface{})
		err := c.ForEachBlock(func() error {
			k, err := c.ReadBytes()
			if err != nil {
				return err
			}
			v, err := n.child().decode(c)
			if err != nil {
				return err
			}
			m[string(k)] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		return m, nil

	case Record:
		m := make(map[string]interface{}, len(n.Children))
		for _, f := range n.Children {
			v, err := f.decode(c)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			m[f.Name] = v
		}
		return m, nil

	case Object:
		length, err := c.ReadBytesLen()
		if err != nil {
			return nil, err
		}
		r := bufferrange.Range{Start: c.Pos, Length: length}
		c.Pos += length
		return r, nil

	case ObjectArray:
		var ranges []bufferrange.Range
		err := c.ForEachBlock(func() error {
			length, err := c.ReadBytesLen()
			if err != nil {
				return err
			}
			ranges = append(ranges, bufferrange.Range{Start: c.Pos, Length: length})
			c.Pos += length
			return nil
		})
		if err != nil {
			return nil, err
		}
		return ranges, nil
	}

	return nil, fmt.Errorf("schema: unknown node kind %d", n.Kind)
}
