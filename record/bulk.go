package record

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/solidcoredata/avrorecord/avro"
)

// DecodeRecords decodes one record of typ from each of buffers, concurrently.
// The output slice is allocated up front and each goroutine writes only to
// its own index, so no locking is needed around the fan-out itself; this
// mirrors the "allocate under lock, decode lock-free" bulk-decode shape
// without an actual interpreter lock to release.
func DecodeRecords(typ *Type, buffers [][]byte) ([]*Record, error) {
	records := make([]*Record, len(buffers))
	var g errgroup.Group
	for i, buf := range buffers {
		i, buf := i, buf
		g.Go(func() error {
			rec, err := Decode(typ, avro.NewCursor(buf))
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// EncodeRecords encodes each record into its own freshly allocated buffer,
// concurrently.
func EncodeRecords(records []*Record) ([][]byte, error) {
	buffers := make([][]byte, len(records))
	var g errgroup.Group
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			buf, err := rec.EncodeBytes()
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			buffers[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buffers, nil
}
