// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
)

// Binary layout sizes.
const (
	// HeaderSize is the size of the fixed fields before cbSize.
	HeaderSize = 16
	// FixedSize is HeaderSize plus the 2-byte cbSize field.
	FixedSize = HeaderSize + 2
	// ExtensibleSize is the cbSize of a WAVEFORMATEXTENSIBLE.
	ExtensibleSize = 22
	// MaxExtensionSize is the largest extension cbSize can describe.
	MaxExtensionSize = 0xFFFF
)

// Kind discriminates the variants of a Format.
type Kind uint8

const (
	PlainKind Kind = iota
	ExtensibleKind
)

func (k Kind) String() string {
	if k == ExtensibleKind {
		return "Extensible"
	}
	return "Plain"
}

// Header holds the fixed WAVEFORMATEX fields after wFormatTag.
type Header struct {
	Channels       uint16
	SamplesPerSec  uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// Extensible holds the WAVEFORMATEXTENSIBLE extension fields.
type Extensible struct {
	// Samples is the ValidBitsPerSample / SamplesPerBlock union.
	Samples     uint16
	ChannelMask uint32
	SubFormat   uuid.UUID
}

func (e *Extensible) ValidBitsPerSample() uint16 { return e.Samples }
func (e *Extensible) SamplesPerBlock() uint16    { return e.Samples }

// Format is a WAVEFORMATEX header. It is either Plain, carrying an opaque
// extension, or Extensible, carrying the decoded WAVEFORMATEXTENSIBLE fields.
// An Extensible format always reports TagExtensible.
//
// The byte order is fixed at construction.
type Format struct {
	Header

	order endian.Order
	tag   Tag
	extra []byte
	ext   *Extensible
}

// NewPlain builds a Plain format. extra is copied.
func NewPlain(order endian.Order, tag Tag, h Header, extra []byte) (*Format, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("%w: byte order %v", audio.ErrArgument, order)
	}
	if len(extra) > MaxExtensionSize {
		return nil, fmt.Errorf("%w: extension of %d bytes", audio.ErrArgument, len(extra))
	}

	return &Format{
		Header: h,
		order:  order,
		tag:    tag,
		extra:  bytes.Clone(extra),
	}, nil
}

// NewExtensible builds an Extensible format.
func NewExtensible(order endian.Order, h Header, ext Extensible) (*Format, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("%w: byte order %v", audio.ErrArgument, order)
	}

	return &Format{
		Header: h,
		order:  order,
		tag:    TagExtensible,
		ext:    &ext,
	}, nil
}

func (f *Format) Kind() Kind {
	if f.ext != nil {
		return ExtensibleKind
	}
	return PlainKind
}

func (f *Format) Order() endian.Order { return f.order }

func (f *Format) Tag() Tag {
	if f.ext != nil {
		return TagExtensible
	}
	return f.tag
}

// SetTag changes the format tag of a Plain format. Extensible formats only
// accept TagExtensible.
func (f *Format) SetTag(t Tag) error {
	if f.ext != nil && t != TagExtensible {
		return fmt.Errorf("%w: format tag of an extensible format is fixed", audio.ErrArgument)
	}
	f.tag = t
	return nil
}

// Extensible returns the extension fields of an Extensible format. The
// pointer aliases f: writes through it are visible in ExtendedBytes and
// Marshal.
func (f *Format) Extensible() (*Extensible, bool) {
	return f.ext, f.ext != nil
}

// ExtendedBytes returns a copy of the extension region as it would be
// serialized.
func (f *Format) ExtendedBytes() []byte {
	if f.ext == nil {
		return bytes.Clone(f.extra)
	}

	b := make([]byte, ExtensibleSize)
	f.putExtensible(b, 0)
	return b
}

// SetExtendedBytes replaces the extension region. On an Extensible format the
// bytes are decoded into the extension fields and must be exactly
// ExtensibleSize long.
func (f *Format) SetExtendedBytes(b []byte) error {
	if f.ext == nil {
		if len(b) > MaxExtensionSize {
			return fmt.Errorf("%w: extension of %d bytes", audio.ErrArgument, len(b))
		}
		f.extra = bytes.Clone(b)
		return nil
	}

	ext, err := decodeExtensible(b, f.order)
	if err != nil {
		return err
	}
	*f.ext = ext
	return nil
}

// ExtensionSize is the cbSize value.
func (f *Format) ExtensionSize() int {
	if f.ext != nil {
		return ExtensibleSize
	}
	return len(f.extra)
}

// Size is the serialized size in bytes.
func (f *Format) Size() int {
	return FixedSize + f.ExtensionSize()
}

// Extend decodes the extension of a Plain TagExtensible format into the
// Extensible variant. An Extensible format is returned as is.
func (f *Format) Extend() (*Format, error) {
	if f.ext != nil {
		return f, nil
	}
	if f.tag != TagExtensible {
		return nil, fmt.Errorf("%w: format tag %v is not extensible", audio.ErrFormat, f.tag)
	}

	ext, err := decodeExtensible(f.extra, f.order)
	if err != nil {
		return nil, err
	}
	return NewExtensible(f.order, f.Header, ext)
}

// Clone returns a deep copy of f.
func (f *Format) Clone() *Format {
	out := *f
	out.extra = bytes.Clone(f.extra)
	if f.ext != nil {
		ext := *f.ext
		out.ext = &ext
	}
	return &out
}

// Equal reports whether f and o serialize to the same bytes in the same
// byte order.
func (f *Format) Equal(o *Format) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.order == o.order &&
		f.Tag() == o.Tag() &&
		f.Header == o.Header &&
		bytes.Equal(f.ExtendedBytes(), o.ExtendedBytes())
}

func (f *Format) String() string {
	s := fmt.Sprintf("%v %dch %dHz %dbit align=%d avg=%d %v-endian",
		f.Tag(), f.Channels, f.SamplesPerSec, f.BitsPerSample, f.BlockAlign, f.AvgBytesPerSec, f.order)
	if f.ext != nil {
		s += fmt.Sprintf(" valid=%d mask=%#x sub=%v", f.ext.Samples, f.ext.ChannelMask, f.ext.SubFormat)
	} else if len(f.extra) > 0 {
		s += fmt.Sprintf(" ext=%d bytes", len(f.extra))
	}
	return s
}
