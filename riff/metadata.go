// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"fmt"

	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/packing"
)

// ChunkHeaderSize is the size of a chunk id plus its 32 bit size field.
const ChunkHeaderSize = 8

// HeaderSize is the size of a container header: signature, size and form.
const HeaderSize = 12

// chunks are word aligned
var wordAlign = packing.Must(packing.New[int64](2, 1))

// MetaData locates a chunk in a stream. All offsets are absolute.
type MetaData struct {
	// Start is the offset of the chunk id.
	Start int64
	// DataStart is the offset of the payload.
	DataStart int64
	// Size is the declared payload size, without the pad byte.
	Size int64
	// PaddedSize is Size rounded up to a word boundary.
	PaddedSize int64
	// Extended is set when Size came from a ds64 chunk.
	Extended bool
	// Truncated is set when the stream ends before the payload does.
	Truncated bool
}

func newMetaData(start, size int64) MetaData {
	return MetaData{
		Start:      start,
		DataStart:  start + ChunkHeaderSize,
		Size:       size,
		PaddedSize: wordAlign.RoundUp(size),
	}
}

// End is the offset right after the padded payload, where the next sibling
// starts.
func (m MetaData) End() int64 { return m.DataStart + m.PaddedSize }

// ShiftLocation moves the chunk by delta bytes.
func (m MetaData) ShiftLocation(delta int64) MetaData {
	m.Start += delta
	m.DataStart += delta
	return m
}

// AdjustLength sets a new payload size and recomputes the padding.
func (m MetaData) AdjustLength(size int64) MetaData {
	m.Size = size
	m.PaddedSize = wordAlign.RoundUp(size)
	return m
}

// Chunk is an entry of a container chunk table.
type Chunk struct {
	ID ID
	MetaData
}

func (c Chunk) String() string {
	s := fmt.Sprintf("%v @%d size=%d", c.ID, c.Start, c.Size)
	if c.Extended {
		s += " (ds64)"
	}
	if c.Truncated {
		s += " (truncated)"
	}
	return s
}

// Header describes a container and the chunks found in it.
type Header struct {
	// MetaData of the container chunk itself. Size is the declared size.
	MetaData

	Signature ID
	Form      ID
	Order     endian.Order
	Chunks    []Chunk
}

// IsRF64 reports whether sizes were resolved through a ds64 chunk.
func (h *Header) IsRF64() bool { return h.Signature == RF64 }

// Find returns the first chunk with the given id.
func (h *Header) Find(id ID) (Chunk, bool) {
	for _, c := range h.Chunks {
		if c.ID == id {
			return c, true
		}
	}
	return Chunk{}, false
}

// FindAll returns every chunk with the given id, in stream order.
func (h *Header) FindAll(id ID) []Chunk {
	var out []Chunk
	for _, c := range h.Chunks {
		if c.ID == id {
			out = append(out, c)
		}
	}
	return out
}
