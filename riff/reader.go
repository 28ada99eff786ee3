// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
)

// Reader walks the chunk table of a RIFF, RIFX, RF64 or IFF FORM container.
//
// The walk is lenient: when the declared sizes run past the end of the
// stream, the chunk that crosses the end is reported as Truncated and the walk
// stops without an error.
type Reader struct {
	rs   io.ReadSeeker
	log  logrus.FieldLogger
	size int64
	hdr  *Header
}

// NewReader returns a Reader for the container starting at the current
// position of rs.
func NewReader(rs io.ReadSeeker, opts ...Option) *Reader {
	o := newOptions(opts)
	return &Reader{rs: rs, log: o.log}
}

// ReadHeader reads the container header and enumerates its chunks. The result
// is cached.
func (r *Reader) ReadHeader() (*Header, error) {
	if r.hdr != nil {
		return r.hdr, nil
	}

	start, err := r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("riff: %w", err)
	}
	streamEnd, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("riff: %w", err)
	}
	r.size = streamEnd

	var buf [HeaderSize]byte
	if err := r.readAt(start, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: container header: %w", audio.ErrFormat, err)
	}

	var sig, form ID
	copy(sig[:], buf[0:4])
	copy(form[:], buf[8:12])

	s, ok := lookupSignature(sig)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrBadSignature, sig)
	}
	declared, _ := endian.ReadU32(buf[:], 4, s.order)

	h := &Header{
		MetaData:  newMetaData(start, int64(declared)),
		Signature: sig,
		Form:      form,
		Order:     s.order,
	}

	var ext *ds64
	end := r.endOf(start, declared)

	pos := start + HeaderSize
	for pos+ChunkHeaderSize <= end {
		var ch [ChunkHeaderSize]byte
		if err := r.readAt(pos, ch[:]); err != nil {
			return nil, fmt.Errorf("riff: chunk header at %d: %w", pos, err)
		}

		var id ID
		copy(id[:], ch[0:4])
		size32, _ := endian.ReadU32(ch[:], 4, s.order)

		c := Chunk{ID: id, MetaData: newMetaData(pos, int64(size32))}

		if s.rf64 && size32 == sizeMarker && ext != nil {
			size, ok := ext.sizeOf(id)
			if !ok {
				return nil, fmt.Errorf("%w: no usable size for %v", ErrBadDS64, id)
			}
			c.MetaData = c.AdjustLength(clampSize(c.DataStart, size))
			c.Extended = true
		}

		if c.DataStart+c.Size > streamEnd {
			c.Truncated = true
		}

		r.log.WithFields(logrus.Fields{
			"id":     c.ID.String(),
			"offset": c.Start,
			"size":   c.Size,
		}).Debug("riff: chunk")

		h.Chunks = append(h.Chunks, c)

		if s.rf64 && ext == nil {
			if id != DS64 {
				return nil, fmt.Errorf("%w: first chunk is %v", ErrBadDS64, id)
			}
			if ext, err = r.readDS64(c); err != nil {
				return nil, err
			}
			h.MetaData = h.AdjustLength(clampSize(h.DataStart, ext.riffSize))
			h.Extended = true
			end = min(h.DataStart+h.Size, streamEnd)
		}

		if c.End() > end {
			if c.End() > streamEnd {
				r.log.WithFields(logrus.Fields{
					"declared_end": c.End(),
					"stream_end":   streamEnd,
				}).Debug("riff: chunk runs past the end of the stream")
			}
			break
		}
		pos = c.End()
	}

	if s.rf64 && ext == nil {
		return nil, fmt.Errorf("%w: missing", ErrBadDS64)
	}
	if declared != 0 && (declared != sizeMarker || h.Extended) {
		h.Truncated = h.DataStart+h.Size > streamEnd
	}

	r.hdr = h
	return h, nil
}

// endOf computes where the chunk walk stops. A size of zero or all ones is
// what streaming writers leave behind, those run to the end of the stream.
func (r *Reader) endOf(start int64, declared uint32) int64 {
	if declared == 0 || declared == sizeMarker {
		return r.size
	}
	return min(start+ChunkHeaderSize+int64(declared), r.size)
}

// clampSize bounds a 64 bit size so that the padded end of a payload starting
// at dataStart stays representable. Any clamped size lies past the stream end.
func clampSize(dataStart int64, size uint64) int64 {
	return int64(min(size, uint64(math.MaxInt64-dataStart-1)))
}

func (r *Reader) readDS64(c Chunk) (*ds64, error) {
	if c.Truncated || c.Size < ds64BaseSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadDS64, c.Size)
	}
	b := make([]byte, c.Size)
	if err := r.readAt(c.DataStart, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDS64, err)
	}
	d, err := parseDS64(b)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadChunk returns the payload of c, without the pad byte. The payload of a
// truncated chunk is cut at the end of the stream.
func (r *Reader) ReadChunk(c Chunk) ([]byte, error) {
	n, err := r.available(c)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if err := r.readAt(c.DataStart, b); err != nil {
		return nil, fmt.Errorf("riff: chunk %v: %w", c.ID, err)
	}
	return b, nil
}

// ChunkReader positions the stream at the payload of c and returns a reader
// limited to it. It is only valid until the next call on r.
func (r *Reader) ChunkReader(c Chunk) (io.Reader, error) {
	n, err := r.available(c)
	if err != nil {
		return nil, err
	}
	if _, err := r.rs.Seek(c.DataStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("riff: %w", err)
	}
	return io.LimitReader(r.rs, n), nil
}

func (r *Reader) available(c Chunk) (int64, error) {
	if _, err := r.ReadHeader(); err != nil {
		return 0, err
	}
	return max(min(c.Size, r.size-c.DataStart), 0), nil
}

func (r *Reader) readAt(off int64, b []byte) error {
	if _, err := r.rs.Seek(off, io.SeekStart); err != nil {
		return err
	}
	_, err := io.ReadFull(r.rs, b)
	return err
}
