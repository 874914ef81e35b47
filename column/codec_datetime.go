package column

import (
	"github.com/solidcoredata/avrorecord/avro"
	"github.com/solidcoredata/avrorecord/kdt"
)

// Date, time, and datetime columns are framed on the wire as an Avro bytes
// value whose payload is a fixed-format ASCII string (date: "YYYY-MM-DD",
// time: "HH:MM:SS.mmm", datetime: "YYYY-MM-DD HH:MM:SS.mmm" or shorter
// forms on read with optional surrounding whitespace); the decoded form is
// always the packed bit layout from the kdt package.

type dateCodec struct{}

func (dateCodec) Kind() Kind { return Date }

func (dateCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	n, err := c.ReadBytesLen()
	if err != nil {
		return Cell{}, err
	}
	sub := &avro.Cursor{Buf: c.Buf, Pos: c.Pos, Max: c.Pos + n}
	c.Pos += n

	sub.SkipWhitespace(0)
	year, _, err := sub.ReadDigits(4, 4, kdt.MinYear, kdt.MaxYear)
	if err != nil {
		return Cell{}, err
	}
	if err := sub.SkipChar('-'); err != nil {
		return Cell{}, err
	}
	month, _, err := sub.ReadDigits(2, 2, 1, 12)
	if err != nil {
		return Cell{}, err
	}
	if err := sub.SkipChar('-'); err != nil {
		return Cell{}, err
	}
	day, _, err := sub.ReadDigits(2, 2, 1, 31)
	if err != nil {
		return Cell{}, err
	}
	sub.SkipWhitespace(0)
	if sub.Pos != sub.Max {
		return Cell{}, avro.ErrOverflow
	}

	packed, err := kdt.EncodeDate(int(year), int(month), int(day))
	if err != nil {
		return Cell{}, avro.ErrOverflow
	}
	return Cell{I32: packed}, nil
}

func (dateCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	date := cell.I32
	if date == 0 {
		date = kdt.DateDefault
	}
	d := kdt.UnpackDate(date)

	if err := c.WriteLong(10); err != nil {
		return err
	}
	if err := c.WriteDigits(4, d.Year); err != nil {
		return err
	}
	if err := c.WriteChar('-'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, d.Month); err != nil {
		return err
	}
	if err := c.WriteChar('-'); err != nil {
		return err
	}
	return c.WriteDigits(2, d.Day)
}

func (dateCodec) SizeRaw(Cell) int { return 11 }

func (dateCodec) Materialize(cell Cell) (interface{}, error) {
	return kdt.UnpackDate(cell.I32), nil
}

func (dateCodec) Ingest(value interface{}) (Cell, error) {
	d, ok := value.(kdt.Date)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	packed, err := kdt.EncodeDate(d.Year, d.Month, d.Day)
	if err != nil {
		return Cell{}, ErrValueError
	}
	return Cell{I32: packed}, nil
}

type dateTimeCodec struct{}

func (dateTimeCodec) Kind() Kind { return DateTime }

func (dateTimeCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	n, err := c.ReadBytesLen()
	if err != nil {
		return Cell{}, err
	}
	sub := &avro.Cursor{Buf: c.Buf, Pos: c.Pos, Max: c.Pos + n}
	c.Pos += n

	sub.SkipWhitespace(0)
	year, _, err := sub.ReadDigits(4, 4, kdt.MinYear, kdt.MaxYear)
	if err != nil {
		return Cell{}, err
	}
	if err := sub.SkipChar('-'); err != nil {
		return Cell{}, err
	}
	month, _, err := sub.ReadDigits(2, 2, 1, 12)
	if err != nil {
		return Cell{}, err
	}
	if err := sub.SkipChar('-'); err != nil {
		return Cell{}, err
	}
	day, _, err := sub.ReadDigits(2, 2, 1, 31)
	if err != nil {
		return Cell{}, err
	}

	var hour, minute, sec, msec int64
	if sub.Pos == sub.Max {
		// date only: time defaults to midnight.
	} else {
		if err := sub.SkipWhitespace(1); err != nil {
			return Cell{}, err
		}
		if sub.Pos != sub.Max {
			hour, _, err = sub.ReadDigits(1, 2, 0, 23)
			if err != nil {
				return Cell{}, err
			}
			if err := sub.SkipChar(':'); err != nil {
				return Cell{}, err
			}
			minute, _, err = sub.ReadDigits(2, 2, 0, 59)
			if err != nil {
				return Cell{}, err
			}
			if err := sub.SkipChar(':'); err != nil {
				return Cell{}, err
			}
			sec, _, err = sub.ReadDigits(2, 2, 0, 59)
			if err != nil {
				return Cell{}, err
			}
			if sub.Pos < sub.Max && sub.Buf[sub.Pos] == '.' {
				sub.Pos++
				frac, digits, err := sub.ReadDigits(1, 6, 0, 999999)
				if err != nil {
					return Cell{}, err
				}
				switch {
				case digits < 3:
					if digits == 2 {
						frac *= 10
					} else {
						frac *= 100
					}
				case digits == 4:
					frac /= 10
				case digits == 5:
					frac /= 100
				case digits == 6:
					frac /= 1000
				}
				msec = frac
			}
		}
	}
	sub.SkipWhitespace(0)
	if sub.Pos != sub.Max {
		return Cell{}, avro.ErrOverflow
	}

	packed, err := kdt.EncodeDateTime(int(year), int(month), int(day), int(hour), int(minute), int(sec), int(msec))
	if err != nil {
		return Cell{}, avro.ErrOverflow
	}
	return Cell{I64: packed}, nil
}

func (dateTimeCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	dt := cell.I64
	if dt == 0 {
		dt = kdt.DateTimeDefault
	}
	d := kdt.UnpackDateTime(dt)

	if err := c.WriteLong(23); err != nil {
		return err
	}
	if err := c.WriteDigits(4, d.Year); err != nil {
		return err
	}
	if err := c.WriteChar('-'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, d.Month); err != nil {
		return err
	}
	if err := c.WriteChar('-'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, d.Day); err != nil {
		return err
	}
	if err := c.WriteChar(' '); err != nil {
		return err
	}
	if err := c.WriteDigits(2, d.Hour); err != nil {
		return err
	}
	if err := c.WriteChar(':'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, d.Minute); err != nil {
		return err
	}
	if err := c.WriteChar(':'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, d.Sec); err != nil {
		return err
	}
	if err := c.WriteChar('.'); err != nil {
		return err
	}
	return c.WriteDigits(3, d.MSec)
}

func (dateTimeCodec) SizeRaw(Cell) int { return 24 }

func (dateTimeCodec) Materialize(cell Cell) (interface{}, error) {
	return kdt.UnpackDateTime(cell.I64), nil
}

func (dateTimeCodec) Ingest(value interface{}) (Cell, error) {
	d, ok := value.(kdt.DateTime)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	packed, err := kdt.EncodeDateTime(d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Sec, d.MSec)
	if err != nil {
		return Cell{}, ErrValueError
	}
	return Cell{I64: packed}, nil
}

type timeCodec struct{}

func (timeCodec) Kind() Kind { return Time }

func (timeCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	n, err := c.ReadBytesLen()
	if err != nil {
		return Cell{}, err
	}
	sub := &avro.Cursor{Buf: c.Buf, Pos: c.Pos, Max: c.Pos + n}
	c.Pos += n

	sub.SkipWhitespace(0)
	hour, _, err := sub.ReadDigits(1, 2, 0, 23)
	if err != nil {
		return Cell{}, err
	}
	if err := sub.SkipChar(':'); err != nil {
		return Cell{}, err
	}
	minute, _, err := sub.ReadDigits(2, 2, 0, 59)
	if err != nil {
		return Cell{}, err
	}
	if err := sub.SkipChar(':'); err != nil {
		return Cell{}, err
	}
	sec, _, err := sub.ReadDigits(2, 2, 0, 59)
	if err != nil {
		return Cell{}, err
	}
	var msec int64
	if sub.Pos < sub.Max && sub.Buf[sub.Pos] == '.' {
		sub.Pos++
		frac, digits, err := sub.ReadDigits(1, 3, 0, 999999)
		if err != nil {
			return Cell{}, err
		}
		if digits == 1 {
			frac *= 100
		} else if digits == 2 {
			frac *= 10
		}
		msec = frac
	}
	sub.SkipWhitespace(0)
	if sub.Pos != sub.Max {
		return Cell{}, avro.ErrOverflow
	}

	return Cell{I32: kdt.EncodeTime(int(hour), int(minute), int(sec), int(msec))}, nil
}

func (timeCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	t := kdt.UnpackTime(cell.I32)

	if err := c.WriteLong(12); err != nil {
		return err
	}
	if err := c.WriteDigits(2, t.Hour); err != nil {
		return err
	}
	if err := c.WriteChar(':'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, t.Minute); err != nil {
		return err
	}
	if err := c.WriteChar(':'); err != nil {
		return err
	}
	if err := c.WriteDigits(2, t.Sec); err != nil {
		return err
	}
	if err := c.WriteChar('.'); err != nil {
		return err
	}
	return c.WriteDigits(3, t.MSec)
}

func (timeCodec) SizeRaw(Cell) int { return 13 }

func (timeCodec) Materialize(cell Cell) (interface{}, error) {
	return kdt.UnpackTime(cell.I32), nil
}

func (timeCodec) Ingest(value interface{}) (Cell, error) {
	t, ok := value.(kdt.Time)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 ||
		t.Sec < 0 || t.Sec > 59 || t.MSec < 0 || t.MSec > 999 {
		return Cell{}, ErrValueError
	}
	return Cell{I32: kdt.EncodeTime(t.Hour, t.Minute, t.Sec, t.MSec)}, nil
}

// timestampCodec stores its raw cell as a packed datetime (like DateTime),
// not as the epoch-millisecond host value; the conversion happens only at
// the Materialize/Ingest boundary and in WriteRaw/ReadRaw's conversion to
// and from the wire's epoch-millisecond long.
type timestampCodec struct{}

func (timestampCodec) Kind() Kind { return Timestamp }

func (timestampCodec) ReadRaw(c *avro.Cursor) (Cell, error) {
	epochMS, err := c.ReadLong()
	if err != nil {
		return Cell{}, err
	}
	if epochMS < kdt.MinEpochMS || epochMS > kdt.MaxEpochMS {
		return Cell{}, avro.ErrOverflow
	}
	return Cell{I64: kdt.EpochMSToDatetime(epochMS)}, nil
}

func (timestampCodec) WriteRaw(c *avro.Cursor, cell Cell) error {
	dt := cell.I64
	if dt == 0 {
		dt = kdt.DateTimeDefault
	}
	return c.WriteLong(kdt.DatetimeToEpochMS(dt))
}

func (timestampCodec) SizeRaw(cell Cell) int {
	dt := cell.I64
	if dt == 0 {
		dt = kdt.DateTimeDefault
	}
	return avro.SizeLong(kdt.DatetimeToEpochMS(dt))
}

func (timestampCodec) Materialize(cell Cell) (interface{}, error) {
	dt := cell.I64
	if dt == 0 {
		dt = kdt.DateTimeDefault
	}
	return kdt.DatetimeToEpochMS(dt), nil
}

func (timestampCodec) Ingest(value interface{}) (Cell, error) {
	epochMS, ok := value.(int64)
	if !ok {
		return Cell{}, ErrTypeMismatch
	}
	if epochMS < kdt.MinEpochMS || epochMS > kdt.MaxEpochMS {
		return Cell{}, ErrValueError
	}
	return Cell{I64: kdt.EpochMSToDatetime(epochMS)}, nil
}
