package avro

// ForEachBlock consumes an Avro blocked sequence (the wire form shared by
// array and map values): a series of blocks, each a count followed by that
// many items, terminated by a zero count. A negative count is followed by a
// byte-size long giving the encoded length of the block's items; that size
// is read and discarded here since every item is visited regardless, not
// skipped as a whole.
func (c *Cursor) ForEachBlock(item func() error) error {
	for {
		count, err := c.ReadLong()
		if err != nil {
			return err
		}
		if count == 0 {
			break
		}
		if count < 0 {
			if _, err := c.ReadLong(); err != nil {
				return err
			}
			count = -count
		}
		for ; count > 0; count-- {
			if err := item(); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteArrayBlock writes n items as a single block (or, if n is 0, just the
// terminating zero count), calling item(i) to write each one in turn.
func (c *Cursor) WriteArrayBlock(n int, item func(i int) error) error {
	if n > 0 {
		if err := c.WriteLong(int64(n)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := item(i); err != nil {
				return err
			}
		}
	}
	return c.WriteLong(0)
}

// SizeArrayBlock returns the exact size WriteArrayBlock(n, ...) would
// produce given the per-item encoded sizes already computed by the caller.
func SizeArrayBlock(n int, itemSize func(i int) int) int {
	size := 0
	if n > 0 {
		size = SizeLong(int64(n))
		for i := 0; i < n; i++ {
			size += itemSize(i)
		}
	}
	return size + SizeLong(0)
}
