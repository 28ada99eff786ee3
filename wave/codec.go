// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
)

// Field offsets within the serialized header.
const (
	offTag            = 0
	offChannels       = 2
	offSamplesPerSec  = 4
	offAvgBytesPerSec = 8
	offBlockAlign     = 12
	offBitsPerSample  = 14
	offCbSize         = 16

	offExtSamples     = 0
	offExtChannelMask = 2
	offExtSubFormat   = 6
)

// Parse decodes a WAVEFORMATEX starting at buf[off]. The result is always the
// Plain variant; call Extend to decode a TagExtensible extension.
//
// A buffer that ends right after the 16 fixed bytes is read as a legacy
// PCMWAVEFORMAT with an empty extension.
func Parse(buf []byte, off int, order endian.Order) (*Format, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("%w: byte order %v", audio.ErrArgument, order)
	}
	if off < 0 || off > len(buf) || len(buf)-off < HeaderSize {
		return nil, fmt.Errorf("%w: need %d header bytes at offset %d, have %d",
			audio.ErrFormat, HeaderSize, off, max(len(buf)-off, 0))
	}

	f := &Format{order: order}

	tag, _ := endian.ReadU16(buf, off+offTag, order)
	f.tag = Tag(tag)
	f.Channels, _ = endian.ReadU16(buf, off+offChannels, order)
	f.SamplesPerSec, _ = endian.ReadU32(buf, off+offSamplesPerSec, order)
	f.AvgBytesPerSec, _ = endian.ReadU32(buf, off+offAvgBytesPerSec, order)
	f.BlockAlign, _ = endian.ReadU16(buf, off+offBlockAlign, order)
	f.BitsPerSample, _ = endian.ReadU16(buf, off+offBitsPerSample, order)

	if len(buf)-off == HeaderSize {
		return f, nil
	}

	cbSize, err := endian.ReadU16(buf, off+offCbSize, order)
	if err != nil {
		return nil, fmt.Errorf("%w: extension size: %w", audio.ErrFormat, err)
	}

	start := off + FixedSize
	if len(buf)-start < int(cbSize) {
		return nil, fmt.Errorf("%w: extension of %d bytes, %d available",
			audio.ErrFormat, cbSize, len(buf)-start)
	}
	if cbSize > 0 {
		f.extra = make([]byte, cbSize)
		copy(f.extra, buf[start:start+int(cbSize)])
	}

	return f, nil
}

// ParseExtensible parses buf and decodes it as a WAVEFORMATEXTENSIBLE.
func ParseExtensible(buf []byte, off int, order endian.Order) (*Format, error) {
	f, err := Parse(buf, off, order)
	if err != nil {
		return nil, err
	}
	return f.Extend()
}

// Marshal serializes f.
func (f *Format) Marshal() []byte {
	b := make([]byte, f.Size())
	f.put(b, 0)
	return b
}

// AppendTo appends the serialized form of f to dst.
func (f *Format) AppendTo(dst []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, f.Size())...)
	f.put(dst, n)
	return dst
}

// MarshalTo writes f into buf at off and returns the number of bytes written.
func (f *Format) MarshalTo(buf []byte, off int) (int, error) {
	if off < 0 || off > len(buf) || len(buf)-off < f.Size() {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d", endian.ErrOutOfRange, f.Size(), off)
	}
	f.put(buf, off)
	return f.Size(), nil
}

// put assumes buf[off:] holds at least Size bytes.
func (f *Format) put(buf []byte, off int) {
	o := f.order

	_ = endian.PutU16(buf, off+offTag, o, uint16(f.Tag()))
	_ = endian.PutU16(buf, off+offChannels, o, f.Channels)
	_ = endian.PutU32(buf, off+offSamplesPerSec, o, f.SamplesPerSec)
	_ = endian.PutU32(buf, off+offAvgBytesPerSec, o, f.AvgBytesPerSec)
	_ = endian.PutU16(buf, off+offBlockAlign, o, f.BlockAlign)
	_ = endian.PutU16(buf, off+offBitsPerSample, o, f.BitsPerSample)
	_ = endian.PutU16(buf, off+offCbSize, o, uint16(f.ExtensionSize()))

	if f.ext != nil {
		f.putExtensible(buf, off+FixedSize)
		return
	}
	copy(buf[off+FixedSize:], f.extra)
}

func (f *Format) putExtensible(buf []byte, off int) {
	_ = endian.PutU16(buf, off+offExtSamples, f.order, f.ext.Samples)
	_ = endian.PutU32(buf, off+offExtChannelMask, f.order, f.ext.ChannelMask)
	_ = endian.PutGUID(buf, off+offExtSubFormat, f.order, f.ext.SubFormat)
}

func decodeExtensible(b []byte, order endian.Order) (Extensible, error) {
	var ext Extensible
	if len(b) != ExtensibleSize {
		return ext, fmt.Errorf("%w: extensible extension is %d bytes, want %d",
			audio.ErrFormat, len(b), ExtensibleSize)
	}

	ext.Samples, _ = endian.ReadU16(b, offExtSamples, order)
	ext.ChannelMask, _ = endian.ReadU32(b, offExtChannelMask, order)
	ext.SubFormat, _ = endian.ReadGUID(b, offExtSubFormat, order)
	return ext, nil
}
