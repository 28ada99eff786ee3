// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
)

// Writer writes a container chunk by chunk. Sizes that are unknown up front
// are measured and patched, so the sink must be seekable.
//
// A RIFF Writer created with WithDS64Reserve keeps a JUNK chunk right after
// the header. If any size outgrows the 32 bit fields, Close turns the JUNK
// chunk into ds64 and the signature into RF64.
type Writer struct {
	ws      io.WriteSeeker
	log     logrus.FieldLogger
	order   endian.Order
	limit   int64
	reserve int
	junk    int
	large   int
	pos     int64
	hdr     Header
	closed  bool
}

// NewWriter writes the container header for sig and form at the current
// position of ws. sig is RIFF, RIFX or FORM.
func NewWriter(ws io.WriteSeeker, sig, form ID, opts ...Option) (*Writer, error) {
	s, ok := lookupSignature(sig)
	if !ok || s.rf64 {
		return nil, fmt.Errorf("%w: cannot write %v", ErrBadSignature, sig)
	}

	o := newOptions(opts)
	if o.reserve >= 0 && sig != RIFF {
		return nil, fmt.Errorf("%w: ds64 needs a RIFF container, got %v", audio.ErrArgument, sig)
	}

	start, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("riff: %w", err)
	}

	w := &Writer{
		ws:      ws,
		log:     o.log,
		order:   s.order,
		limit:   o.limit,
		reserve: o.reserve,
		junk:    -1,
		pos:     start + HeaderSize,
		hdr: Header{
			MetaData:  newMetaData(start, 4),
			Signature: sig,
			Form:      form,
			Order:     s.order,
		},
	}

	if err := w.putHeader(sig, 4); err != nil {
		return nil, err
	}
	if _, err := w.ws.Write(form[:]); err != nil {
		return nil, fmt.Errorf("riff: %w", err)
	}

	if w.reserve >= 0 {
		if _, err := w.WriteChunk(Junk, make([]byte, ds64Size(w.reserve))); err != nil {
			return nil, err
		}
		w.junk = len(w.hdr.Chunks) - 1
	}
	return w, nil
}

// WriteChunk writes a chunk holding payload.
func (w *Writer) WriteChunk(id ID, payload []byte) (Chunk, error) {
	return w.WriteChunkFunc(id, int64(len(payload)), func(dst io.Writer) error {
		_, err := dst.Write(payload)
		return err
	})
}

// WriteChunkFunc writes a chunk whose payload is produced by fn.
//
// With size >= 0 the size is declared up front: writing more fails with
// ErrPayloadTooLong, writing less is zero filled. With size < 0 the payload
// is measured and the chunk header patched afterwards.
func (w *Writer) WriteChunkFunc(id ID, size int64, fn func(io.Writer) error) (Chunk, error) {
	if w.closed {
		return Chunk{}, ErrClosed
	}

	c := Chunk{ID: id, MetaData: newMetaData(w.pos, max(size, 0))}
	if err := w.putChunkHeader(&c); err != nil {
		return Chunk{}, err
	}

	cw := &chunkWriter{w: w.ws, limit: size}
	if err := fn(cw); err != nil {
		return Chunk{}, fmt.Errorf("riff: chunk %v: %w", id, err)
	}

	if size < 0 {
		c.MetaData = c.AdjustLength(cw.n)
		if err := w.putChunkHeader(&c); err != nil {
			return Chunk{}, err
		}
		if _, err := w.ws.Seek(c.DataStart+cw.n, io.SeekStart); err != nil {
			return Chunk{}, fmt.Errorf("riff: %w", err)
		}
	} else if cw.n < size {
		w.log.WithFields(logrus.Fields{
			"id":      id.String(),
			"written": cw.n,
			"size":    size,
		}).Debug("riff: short payload, zero filling")
	}

	if err := writeZeros(w.ws, c.End()-(c.DataStart+cw.n)); err != nil {
		return Chunk{}, fmt.Errorf("riff: chunk %v: %w", id, err)
	}

	w.pos = c.End()
	if c.Extended && c.ID != Data {
		w.large++
	}
	w.hdr.Chunks = append(w.hdr.Chunks, c)

	w.log.WithFields(logrus.Fields{
		"id":     id.String(),
		"offset": c.Start,
		"size":   c.Size,
	}).Debug("riff: wrote chunk")

	return c, nil
}

// putChunkHeader writes the id and size of c and leaves the stream at its
// payload.
func (w *Writer) putChunkHeader(c *Chunk) error {
	field := uint32(c.Size)
	c.Extended = false

	if c.Size > w.limit {
		if w.reserve < 0 {
			return fmt.Errorf("%w: chunk %v of %d bytes", ErrTooLarge, c.ID, c.Size)
		}
		if c.ID != Data && w.large >= w.reserve {
			return fmt.Errorf("%w: no ds64 table entry left for %v", ErrTooLarge, c.ID)
		}
		c.Extended = true
		field = sizeMarker
	}

	var b [ChunkHeaderSize]byte
	copy(b[:4], c.ID[:])
	_ = endian.PutU32(b[:], 4, w.order, field)
	return w.writeAt(c.Start, b[:])
}

func (w *Writer) putHeader(sig ID, size uint32) error {
	var b [ChunkHeaderSize]byte
	copy(b[:4], sig[:])
	_ = endian.PutU32(b[:], 4, w.order, size)
	return w.writeAt(w.hdr.Start, b[:])
}

func (w *Writer) writeAt(off int64, b []byte) error {
	if _, err := w.ws.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("riff: %w", err)
	}
	if _, err := w.ws.Write(b); err != nil {
		return fmt.Errorf("riff: %w", err)
	}
	return nil
}

// Header returns the chunk table written so far.
func (w *Writer) Header() *Header {
	h := w.hdr
	h.Chunks = append([]Chunk(nil), w.hdr.Chunks...)
	return &h
}

// Close patches the container size, promoting to RF64 when needed, and leaves
// the stream after the last chunk. It does not close ws.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	total := w.pos - w.hdr.DataStart
	w.hdr.MetaData = w.hdr.AdjustLength(total)

	if total <= w.limit && !w.anyExtended() {
		if err := w.putHeader(w.hdr.Signature, uint32(total)); err != nil {
			return err
		}
		_, err := w.ws.Seek(w.pos, io.SeekStart)
		return err
	}

	if w.junk < 0 {
		return fmt.Errorf("%w: container of %d bytes", ErrTooLarge, total)
	}
	if err := w.promote(uint64(total)); err != nil {
		return err
	}
	_, err := w.ws.Seek(w.pos, io.SeekStart)
	return err
}

func (w *Writer) anyExtended() bool {
	for _, c := range w.hdr.Chunks {
		if c.Extended {
			return true
		}
	}
	return false
}

func (w *Writer) promote(total uint64) error {
	d := ds64{riffSize: total, table: map[ID]uint64{}}
	for _, c := range w.hdr.Chunks {
		switch {
		case c.ID == Data && d.dataSize == 0:
			d.dataSize = uint64(c.Size)
		case c.Extended:
			d.table[c.ID] = uint64(c.Size)
		}
	}

	junk := &w.hdr.Chunks[w.junk]
	junk.ID = DS64
	if err := w.putChunkHeader(junk); err != nil {
		return err
	}
	if _, err := w.ws.Write(d.marshal(w.reserve)); err != nil {
		return fmt.Errorf("riff: %w", err)
	}

	w.hdr.Signature = RF64
	w.hdr.Extended = true
	if err := w.putHeader(RF64, sizeMarker); err != nil {
		return err
	}

	w.log.WithFields(logrus.Fields{
		"riff_size": d.riffSize,
		"data_size": d.dataSize,
		"entries":   len(d.table),
	}).Debug("riff: promoted to RF64")
	return nil
}

// chunkWriter counts payload bytes and enforces a declared size.
type chunkWriter struct {
	w     io.Writer
	limit int64
	n     int64
}

func (cw *chunkWriter) Write(p []byte) (int, error) {
	var err error
	if cw.limit >= 0 && cw.n+int64(len(p)) > cw.limit {
		p = p[:cw.limit-cw.n]
		err = ErrPayloadTooLong
	}
	n, werr := cw.w.Write(p)
	cw.n += int64(n)
	if werr != nil {
		return n, werr
	}
	return n, err
}

var zeros [512]byte

func writeZeros(w io.Writer, n int64) error {
	for n > 0 {
		k := min(n, int64(len(zeros)))
		if _, err := w.Write(zeros[:k]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}
