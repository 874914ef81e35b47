package avro

// ReadDigits reads between min and max ASCII decimal digits (inclusive),
// returning the parsed value and the digit count. The parsed value must
// fall within [lo, hi]; fewer than min digits is ErrOverflow, or ErrEOF if
// the shortage was caused by reaching Max.
func (c *Cursor) ReadDigits(min, max, lo, hi int) (value int64, digits int, err error) {
	start := c.Pos
	var v int64
	n := 0
	for n < max && c.Pos < c.Max && c.Buf[c.Pos] >= '0' && c.Buf[c.Pos] <= '9' {
		v = v*10 + int64(c.Buf[c.Pos]-'0')
		n++
		c.Pos++
	}
	if n < min {
		atMax := c.Pos == c.Max
		c.Pos = start
		if atMax {
			return 0, 0, ErrEOF
		}
		return 0, 0, ErrOverflow
	}
	if v < int64(lo) || v > int64(hi) {
		c.Pos = start
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

// SkipWhitespace consumes ASCII whitespace (space, \t, \n, \v, \f, \r),
// requiring at least min characters.
func (c *Cursor) SkipWhitespace(min int) error {
	start := c.Pos
	for c.Pos < c.Max && isASCIIWhitespace(c.Buf[c.Pos]) {
		c.Pos++
	}
	if c.Pos-start < min {
		if c.Pos == c.Max {
			return ErrEOF
		}
		return ErrOverflow
	}
	return nil
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// SkipChar consumes a single byte that must equal expected.
func (c *Cursor) SkipChar(expected byte) error {
	if c.Pos >= c.Max {
		return ErrEOF
	}
	if c.Buf[c.Pos] != expected {
		return ErrOverflow
	}
	c.Pos++
	return nil
}

// WriteChar writes a single literal byte.
func (c *Cursor) WriteChar(b byte) error {
	if c.Pos >= c.Max {
		return ErrEOF
	}
	c.Buf[c.Pos] = b
	c.Pos++
	return nil
}

// WriteDigits writes the base-10 representation of i, left-padded with
// zeroes to at least minDigits characters. i must be non-negative.
func (c *Cursor) WriteDigits(minDigits, i int) error {
	digits := digitCount(i, minDigits)
	if c.Pos+digits > c.Max {
		return ErrEOF
	}
	end := c.Pos + digits
	p := end - 1
	v := i
	for v > 0 {
		c.Buf[p] = byte(v%10) + '0'
		p--
		v /= 10
	}
	for p >= c.Pos {
		c.Buf[p] = '0'
		p--
	}
	c.Pos = end
	return nil
}

func digitCount(i, minDigits int) int {
	actual := 0
	v := i
	for v > 0 {
		actual++
		v /= 10
	}
	if actual < minDigits {
		return minDigits
	}
	return actual
}

// SizeDigits returns the number of bytes WriteDigits would produce.
func SizeDigits(minDigits, i int) int {
	return digitCount(i, minDigits)
}
