package schema

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/solidcoredata/avrorecord/avro"
)

// Prepared is the result of walking a host value tree against a Node: its
// exact encoded size, ready to allocate a buffer from, and a Write method
// that streams it into a Cursor without revisiting any validation.
type Prepared struct {
	size  int
	write func(c *avro.Cursor) error
}

// Size returns the exact number of bytes Write will produce.
func (p *Prepared) Size() int { return p.size }

// Write streams the prepared value into c.
func (p *Prepared) Write(c *avro.Cursor) error { return p.write(c) }

// EncodeBytes allocates a buffer of exactly Size() bytes and writes into it.
func (p *Prepared) EncodeBytes() ([]byte, error) {
	buf := make([]byte, p.size)
	c := avro.NewCursor(buf)
	if err := p.write(c); err != nil {
		return nil, err
	}
	return buf, nil
}

// Prepare validates value against n and computes its encoded size, without
// writing anything. The returned Prepared's Write always succeeds provided
// it is called at most once against a Cursor with at least Size() bytes of
// room.
func (n *Node) Prepare(value interface{}) (*Prepared, error) {
	return n.prepare(value, "$")
}

func (n *Node) prepare(value interface{}, path string) (*Prepared, error) {
	switch n.Kind {
	case Nullable:
		if value == nil {
			return &Prepared{size: avro.SizeLong(1), write: func(c *avro.Cursor) error {
				return c.WriteLong(1)
			}}, nil
		}
		inner, err := n.child().prepare(value, path)
		if err != nil {
			return nil, err
		}
		return &Prepared{size: avro.SizeLong(0) + inner.size, write: func(c *avro.Cursor) error {
			if err := c.WriteLong(0); err != nil {
				return err
			}
			return inner.write(c)
		}}, nil

	case Boolean:
		v, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		return &Prepared{size: 1, write: func(c *avro.Cursor) error { return c.WriteBoolean(v) }}, nil

	case Bytes:
		v, ok := value.([]byte)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		return &Prepared{size: avro.SizeBytes(len(v)), write: func(c *avro.Cursor) error { return c.WriteBytes(v) }}, nil

	case Double:
		v, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		return &Prepared{size: 8, write: func(c *avro.Cursor) error { return c.WriteDouble(v) }}, nil

	case Float:
		v, ok := value.(float32)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		return &Prepared{size: 4, write: func(c *avro.Cursor) error { return c.WriteFloat(v) }}, nil

	case Int:
		v, ok := value.(int32)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		return &Prepared{size: avro.SizeLong(int64(v)), write: func(c *avro.Cursor) error { return c.WriteInt(v) }}, nil

	case Long:
		v, ok := value.(int64)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		return &Prepared{size: avro.SizeLong(v), write: func(c *avro.Cursor) error { return c.WriteLong(v) }}, nil

	case String:
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		if !utf8.ValidString(v) {
			return nil, fmt.Errorf("%s: %w", path, ErrValueError)
		}
		b := []byte(v)
		return &Prepared{size: avro.SizeBytes(len(b)), write: func(c *avro.Cursor) error { return c.WriteBytes(b) }}, nil

	case Array:
		items, ok := value.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		prepItems := make([]*Prepared, len(items))
		size := avro.SizeLong(0)
		if len(items) > 0 {
			size = avro.SizeLong(int64(len(items)))
			for i, item := range items {
				p, err := n.child().prepare(item, fmt.Sprintf("%s[%d]", path, i))
				if err != nil {
					return nil, err
				}
				prepItems[i] = p
				size += p.size
			}
			size += avro.SizeLong(0)
		}
		return &Prepared{size: size, write: func(c *avro.Cursor) error {
			return c.WriteArrayBlock(len(prepItems), func(i int) error { return prepItems[i].write(c) })
		}}, nil

	case Map:
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		prepVals := make([]*Prepared, len(keys))
		size := avro.SizeLong(0)
		if len(keys) > 0 {
			size = avro.SizeLong(int64(len(keys)))
			for i, k := range keys {
				if !utf8.ValidString(k) {
					return nil, fmt.Errorf("%s{%s}: %w", path, k, ErrValueError)
				}
				p, err := n.child().prepare(m[k], fmt.Sprintf("%s{%s}", path, k))
				if err != nil {
					return nil, err
				}
				prepVals[i] = p
				size += avro.SizeBytes(len(k)) + p.size
			}
			size += avro.SizeLong(0)
		}
		return &Prepared{size: size, write: func(c *avro.Cursor) error {
			return c.WriteArrayBlock(len(keys), func(i int) error {
				if err := c.WriteBytes([]byte(keys[i])); err != nil {
					return err
				}
				return prepVals[i].write(c)
			})
		}}, nil

	case Record:
		m, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		prepFields := make([]*Prepared, len(n.Children))
		size := 0
		matched := 0
		for i, f := range n.Children {
			fv, present := m[f.Name]
			if present {
				matched++
			}
			if !present || fv == nil {
				if f.HasDefault {
					fv = f.Default
				} else if !present {
					return nil, fmt.Errorf("%s.%s: %w", path, f.Name, ErrLookup)
				}
			}
			p, err := f.prepare(fv, path+"."+f.Name)
			if err != nil {
				return nil, err
			}
			prepFields[i] = p
			size += p.size
		}
		if matched != len(m) {
			return nil, fmt.Errorf("%s: %w", path, ErrValueError)
		}
		return &Prepared{size: size, write: func(c *avro.Cursor) error {
			for _, p := range prepFields {
				if err := p.write(c); err != nil {
					return err
				}
			}
			return nil
		}}, nil

	case Object:
		var b []byte
		if value != nil {
			v, ok := value.([]byte)
			if !ok {
				return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
			}
			b = v
		}
		return &Prepared{size: avro.SizeBytes(len(b)), write: func(c *avro.Cursor) error { return c.WriteBytes(b) }}, nil

	case ObjectArray:
		items, ok := value.([][]byte)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrTypeMismatch)
		}
		size := avro.SizeLong(0)
		if len(items) > 0 {
			size = avro.SizeLong(int64(len(items)))
			for _, b := range items {
				size += avro.SizeBytes(len(b))
			}
			size += avro.SizeLong(0)
		}
		return &Prepared{size: size, write: func(c *avro.Cursor) error {
			return c.WriteArrayBlock(len(items), func(i int) error { return c.WriteBytes(items[i]) })
		}}, nil
	}

	return nil, fmt.Errorf("%s: unknown node kind %d", path, n.Kind)
}
