// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/aiff"
	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/packing"
	"github.com/ik5/audfmt/riff"
)

const (
	commSize     = 18
	aifcCommSize = commSize + 4
)

// sample points are stored left justified in whole bytes
var bytePacking = packing.Must(packing.New(8, 1))

// Compression types found in AIFC COMM chunks.
var (
	CompressionNone = riff.ID{'N', 'O', 'N', 'E'}
	CompressionTwos = riff.ID{'t', 'w', 'o', 's'}
	CompressionSowt = riff.ID{'s', 'o', 'w', 't'}
	CompressionFl32 = riff.ID{'f', 'l', '3', '2'}
	CompressionFl64 = riff.ID{'f', 'l', '6', '4'}
	CompressionULaw = riff.ID{'u', 'l', 'a', 'w'}
	CompressionALaw = riff.ID{'a', 'l', 'a', 'w'}
	compressionFL32 = riff.ID{'F', 'L', '3', '2'}
	compressionFL64 = riff.ID{'F', 'L', '6', '4'}
	compressionULAW = riff.ID{'U', 'L', 'A', 'W'}
	compressionALAW = riff.ID{'A', 'L', 'A', 'W'}
)

type compression struct {
	order    endian.Order
	encoding audio.Encoding
	dataType audio.DataType
	depth    int // 0 keeps the COMM sample size
}

var compressions = map[riff.ID]compression{
	CompressionNone: {endian.Big, audio.EncodingPcm, audio.Int, 0},
	CompressionTwos: {endian.Big, audio.EncodingPcm, audio.Int, 0},
	CompressionSowt: {endian.Little, audio.EncodingPcm, audio.Int, 0},
	CompressionFl32: {endian.Big, audio.EncodingPcm, audio.Ieee754, 32},
	compressionFL32: {endian.Big, audio.EncodingPcm, audio.Ieee754, 32},
	CompressionFl64: {endian.Big, audio.EncodingPcm, audio.Ieee754, 64},
	compressionFL64: {endian.Big, audio.EncodingPcm, audio.Ieee754, 64},
	CompressionULaw: {endian.Big, audio.EncodingMuLaw, audio.Int, 8},
	compressionULAW: {endian.Big, audio.EncodingMuLaw, audio.Int, 8},
	CompressionALaw: {endian.Big, audio.EncodingALaw, audio.Int, 8},
	compressionALAW: {endian.Big, audio.EncodingALaw, audio.Int, 8},
}

// Info describes an AIFF or AIFC file.
type Info struct {
	Header      *riff.Header
	Compression riff.ID
	Format      audio.Format
	Frames      int64
}

// Duration is the playing time of the sound data.
func (i *Info) Duration() time.Duration {
	rate, ok := i.Format.SampleRate()
	if !ok || rate <= 0 {
		return 0
	}
	return time.Duration(i.Frames) * time.Second / time.Duration(rate)
}

// Chunks walks the FORM container of an AIFF or AIFC file starting at the
// current position of rs.
func Chunks(rs io.ReadSeeker, opts ...riff.Option) (*riff.Header, error) {
	h, err := riff.NewReader(rs, opts...).ReadHeader()
	if err != nil {
		return nil, wrapHeaderErr(err)
	}
	if err := checkForm(h); err != nil {
		return nil, err
	}
	return h, nil
}

// ReadInfo walks the container and decodes COMM with the go-audio decoder.
func ReadInfo(rs io.ReadSeeker, opts ...riff.Option) (*Info, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	r := riff.NewReader(rs, opts...)
	h, err := r.ReadHeader()
	if err != nil {
		return nil, wrapHeaderErr(err)
	}
	if err := checkForm(h); err != nil {
		return nil, err
	}

	c, ok := h.Find(riff.Comm)
	if !ok {
		return nil, ErrMissingCommChunk
	}
	comm, err := r.ReadChunk(c)
	if err != nil {
		return nil, err
	}

	comp := CompressionNone
	if h.Form == riff.AIFC {
		if len(comm) < aifcCommSize {
			return nil, fmt.Errorf("%w: %d bytes", ErrMissingCommChunk, len(comm))
		}
		copy(comp[:], comm[commSize:aifcCommSize])
	} else if len(comm) < commSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMissingCommChunk, len(comm))
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrMissingCommChunk
	}

	af, err := formatFor(comp, dec.SampleRate, int(dec.BitDepth), int(dec.NumChans))
	if err != nil {
		return nil, err
	}

	return &Info{
		Header:      h,
		Compression: comp,
		Format:      af,
		Frames:      int64(dec.NumSampleFrames),
	}, nil
}

func formatFor(comp riff.ID, rate, depth, channels int) (audio.Format, error) {
	c, ok := compressions[comp]
	if !ok {
		return audio.Format{}, fmt.Errorf("%w %q", ErrUnsupportedCompression, comp)
	}
	if c.depth != 0 {
		depth = c.depth
	}

	af := audio.New(
		audio.Attribute{Key: audio.KeyEndianness, Value: c.order},
		audio.Attribute{Key: audio.KeyEncoding, Value: c.encoding},
		audio.Attribute{Key: audio.KeySampleRate, Value: rate},
		audio.Attribute{Key: audio.KeyDepth, Value: depth},
		audio.Attribute{Key: audio.KeyChannels, Value: channels},
		audio.Attribute{Key: audio.KeyDataType, Value: c.dataType},
	)
	if packed := bytePacking.RoundUp(depth); packed != depth {
		af = af.WithPacking(packed)
	}

	if err := af.Validate(); err != nil {
		return audio.Format{}, fmt.Errorf("%w: %w", audio.ErrFormat, err)
	}
	return af, nil
}

func checkForm(h *riff.Header) error {
	if h.Signature != riff.FORM || (h.Form != riff.AIFF && h.Form != riff.AIFC) {
		return fmt.Errorf("%w: %v/%v", ErrNotAiffFile, h.Signature, h.Form)
	}
	return nil
}

func wrapHeaderErr(err error) error {
	if errors.Is(err, riff.ErrBadSignature) {
		return fmt.Errorf("%w: %w", ErrNotAiffFile, err)
	}
	return err
}
