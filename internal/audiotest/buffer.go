// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds in-memory streams and container fixtures shared by
// the package tests.
package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is an in-memory io.ReadWriteSeeker. Seeking past the end is allowed,
// a later Write zero fills the gap like a file would.
type Buffer struct {
	data   []byte
	offset int64
}

// NewBuffer returns a Buffer holding a copy of data, positioned at 0.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: append([]byte(nil), data...)}
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			tail := b.data[len(b.data):end]
			clear(tail)
			b.data = b.data[:end]
		}
	}
	copy(b.data[b.offset:], p)
	b.offset = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.offset + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, errors.New("negative position")
	}

	b.offset = next
	return next, nil
}

// Bytes returns the buffer content. It aliases the buffer until the next
// Write.
func (b *Buffer) Bytes() []byte { return b.data }

// Len is the size of the content.
func (b *Buffer) Len() int { return len(b.data) }

// Truncate cuts the content to n bytes.
func (b *Buffer) Truncate(n int) {
	b.data = b.data[:min(n, len(b.data))]
}
