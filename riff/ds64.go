// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"bytes"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/ik5/audfmt/endian"
)

// ds64 chunk layout (EBU Tech 3306): riff size, data size and sample count as
// 64 bit values, then a table of {id, size} entries for other large chunks.
const (
	ds64BaseSize  = 28
	ds64EntrySize = 12

	sizeMarker = math.MaxUint32
)

type ds64 struct {
	riffSize    uint64
	dataSize    uint64
	sampleCount uint64
	table       map[ID]uint64
}

func ds64Size(entries int) int64 {
	return ds64BaseSize + int64(entries)*ds64EntrySize
}

func parseDS64(b []byte) (ds64, error) {
	var d ds64
	if len(b) < ds64BaseSize {
		return d, fmt.Errorf("%w: %d bytes", ErrBadDS64, len(b))
	}

	d.riffSize, _ = endian.ReadU64(b, 0, endian.Little)
	d.dataSize, _ = endian.ReadU64(b, 8, endian.Little)
	d.sampleCount, _ = endian.ReadU64(b, 16, endian.Little)
	n, _ := endian.ReadU32(b, 24, endian.Little)

	if d.riffSize > math.MaxInt64 {
		return d, fmt.Errorf("%w: riff size %d", ErrBadDS64, d.riffSize)
	}

	if int64(n) > (int64(len(b))-ds64BaseSize)/ds64EntrySize {
		return d, fmt.Errorf("%w: table of %d entries in %d bytes", ErrBadDS64, n, len(b))
	}

	d.table = make(map[ID]uint64, n)
	for i := range int(n) {
		off := ds64BaseSize + i*ds64EntrySize
		var id ID
		copy(id[:], b[off:off+4])
		d.table[id], _ = endian.ReadU64(b, off+4, endian.Little)
	}
	return d, nil
}

// sizeOf resolves a 32 bit size marker.
func (d ds64) sizeOf(id ID) (uint64, bool) {
	if id == Data {
		return d.dataSize, true
	}
	v, ok := d.table[id]
	return v, ok
}

func (d ds64) marshal(entries int) []byte {
	b := make([]byte, ds64Size(entries))
	_ = endian.PutU64(b, 0, endian.Little, d.riffSize)
	_ = endian.PutU64(b, 8, endian.Little, d.dataSize)
	_ = endian.PutU64(b, 16, endian.Little, d.sampleCount)
	_ = endian.PutU32(b, 24, endian.Little, uint32(len(d.table)))

	ids := slices.SortedFunc(maps.Keys(d.table), func(x, y ID) int {
		return bytes.Compare(x[:], y[:])
	})

	off := ds64BaseSize
	for _, id := range ids {
		copy(b[off:], id[:])
		_ = endian.PutU64(b, off+4, endian.Little, d.table[id])
		off += ds64EntrySize
	}
	return b
}
