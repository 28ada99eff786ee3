// SPDX-License-Identifier: EPL-2.0

// Package endian reads and writes fixed-width integers and GUIDs at byte
// offsets under a selectable byte order.
//
// Every accessor checks bounds and returns ErrOutOfRange rather than
// panicking or truncating:
//
//	v, err := endian.ReadU32(buf, 4, endian.Little)
//
// GUIDs use the COM layout: the first three fields (u32, u16, u16) follow the
// byte order, the trailing 8 bytes are stored as-is.
package endian

import (
	"encoding/binary"
	"fmt"
)

// Order is the byte order of multi-byte fields.
type Order uint8

const (
	Little Order = iota
	Big
)

// ByteOrder returns the encoding/binary implementation of o.
func (o Order) ByteOrder() binary.ByteOrder {
	if o == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Valid reports whether o is Little or Big.
func (o Order) Valid() bool {
	return o == Little || o == Big
}

func (o Order) String() string {
	switch o {
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}
