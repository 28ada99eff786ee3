// SPDX-License-Identifier: EPL-2.0

package endian

import (
	"fmt"

	"github.com/google/uuid"
)

// GUIDSize is the encoded size of a GUID.
const GUIDSize = 16

func span(buf []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(buf) || len(buf)-off < n {
		return nil, fmt.Errorf("%w: %d bytes at %d in buffer of %d", ErrOutOfRange, n, off, len(buf))
	}
	return buf[off : off+n], nil
}

func ReadU16(buf []byte, off int, o Order) (uint16, error) {
	b, err := span(buf, off, 2)
	if err != nil {
		return 0, err
	}
	return o.ByteOrder().Uint16(b), nil
}

func ReadU32(buf []byte, off int, o Order) (uint32, error) {
	b, err := span(buf, off, 4)
	if err != nil {
		return 0, err
	}
	return o.ByteOrder().Uint32(b), nil
}

func ReadU64(buf []byte, off int, o Order) (uint64, error) {
	b, err := span(buf, off, 8)
	if err != nil {
		return 0, err
	}
	return o.ByteOrder().Uint64(b), nil
}

func ReadI16(buf []byte, off int, o Order) (int16, error) {
	v, err := ReadU16(buf, off, o)
	return int16(v), err
}

func ReadI32(buf []byte, off int, o Order) (int32, error) {
	v, err := ReadU32(buf, off, o)
	return int32(v), err
}

func PutU16(buf []byte, off int, o Order, v uint16) error {
	b, err := span(buf, off, 2)
	if err != nil {
		return err
	}
	o.ByteOrder().PutUint16(b, v)
	return nil
}

func PutU32(buf []byte, off int, o Order, v uint32) error {
	b, err := span(buf, off, 4)
	if err != nil {
		return err
	}
	o.ByteOrder().PutUint32(b, v)
	return nil
}

func PutU64(buf []byte, off int, o Order, v uint64) error {
	b, err := span(buf, off, 8)
	if err != nil {
		return err
	}
	o.ByteOrder().PutUint64(b, v)
	return nil
}

func PutI16(buf []byte, off int, o Order, v int16) error {
	return PutU16(buf, off, o, uint16(v))
}

func PutI32(buf []byte, off int, o Order, v int32) error {
	return PutU32(buf, off, o, uint32(v))
}

// ReadGUID decodes a COM GUID. uuid.UUID keeps the canonical (big-endian)
// field order, so Little swaps the first three fields and Big copies verbatim.
func ReadGUID(buf []byte, off int, o Order) (uuid.UUID, error) {
	var g uuid.UUID

	b, err := span(buf, off, GUIDSize)
	if err != nil {
		return g, err
	}

	bo := o.ByteOrder()
	d1 := bo.Uint32(b[0:4])
	d2 := bo.Uint16(b[4:6])
	d3 := bo.Uint16(b[6:8])

	g[0], g[1], g[2], g[3] = byte(d1>>24), byte(d1>>16), byte(d1>>8), byte(d1)
	g[4], g[5] = byte(d2>>8), byte(d2)
	g[6], g[7] = byte(d3>>8), byte(d3)
	copy(g[8:], b[8:16])

	return g, nil
}

// PutGUID encodes g in the COM layout.
func PutGUID(buf []byte, off int, o Order, g uuid.UUID) error {
	b, err := span(buf, off, GUIDSize)
	if err != nil {
		return err
	}

	bo := o.ByteOrder()
	bo.PutUint32(b[0:4], uint32(g[0])<<24|uint32(g[1])<<16|uint32(g[2])<<8|uint32(g[3]))
	bo.PutUint16(b[4:6], uint16(g[4])<<8|uint16(g[5]))
	bo.PutUint16(b[6:8], uint16(g[6])<<8|uint16(g[7]))
	copy(b[8:16], g[8:])

	return nil
}
