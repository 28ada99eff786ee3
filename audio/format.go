// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/ik5/audfmt/endian"
)

// Attribute is a single key/value pair of a Format.
type Attribute struct {
	Key   Key
	Value any
}

// Format is an ordered attribute bag describing an audio stream
// independently of any binary encoding. Keys are unique and keep their
// insertion order. Values are comparable primitives (int, bool, string or one
// of the enum types of this package).
//
// A Format is a value: With and Without return modified copies and never
// touch the receiver.
type Format struct {
	attrs []Attribute
}

// New builds a Format from attrs. A repeated key keeps its first position and
// takes the last value. Like With, it panics on a value that is not
// comparable.
func New(attrs ...Attribute) Format {
	f := Format{attrs: make([]Attribute, 0, len(attrs))}
	for _, a := range attrs {
		f.set(a.Key, a.Value)
	}
	return f
}

// NewPCM builds the common attribute set of an uncompressed stream.
func NewPCM(order endian.Order, dataType DataType, sampleRate, depth, channels int) Format {
	return New(
		Attribute{KeyEndianness, order},
		Attribute{KeyEncoding, EncodingPcm},
		Attribute{KeySampleRate, sampleRate},
		Attribute{KeyDepth, depth},
		Attribute{KeyChannels, channels},
		Attribute{KeyDataType, dataType},
	)
}

func normalize(v any) any {
	switch n := v.(type) {
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint:
		return int(n)
	default:
		return v
	}
}

func (f *Format) set(k Key, v any) {
	if v != nil && !reflect.TypeOf(v).Comparable() {
		panic(fmt.Sprintf("audio: %s value of type %T is not comparable", k, v))
	}
	v = normalize(v)
	for i := range f.attrs {
		if f.attrs[i].Key == k {
			f.attrs[i].Value = v
			return
		}
	}
	f.attrs = append(f.attrs, Attribute{Key: k, Value: v})
}

func (f Format) clone(extra int) Format {
	out := make([]Attribute, len(f.attrs), len(f.attrs)+extra)
	copy(out, f.attrs)
	return Format{attrs: out}
}

// With returns a copy of f with k set to v. It panics if v is not comparable
// (a slice, map or func), since Equal could not compare it.
func (f Format) With(k Key, v any) Format {
	out := f.clone(1)
	out.set(k, v)
	return out
}

// Without returns a copy of f without k.
func (f Format) Without(k Key) Format {
	out := Format{attrs: make([]Attribute, 0, len(f.attrs))}
	for _, a := range f.attrs {
		if a.Key != k {
			out.attrs = append(out.attrs, a)
		}
	}
	return out
}

// WithSpeakers is shorthand for With(KeySpeakers, s).
func (f Format) WithSpeakers(s Speakers) Format { return f.With(KeySpeakers, s) }

// WithPacking is shorthand for With(KeyPacking, bits).
func (f Format) WithPacking(bits int) Format { return f.With(KeyPacking, bits) }

func (f Format) Get(k Key) (any, bool) {
	for _, a := range f.attrs {
		if a.Key == k {
			return a.Value, true
		}
	}
	return nil, false
}

func (f Format) Has(k Key) bool {
	_, ok := f.Get(k)
	return ok
}

func (f Format) Len() int { return len(f.attrs) }

// IsZero reports whether f holds no attributes.
func (f Format) IsZero() bool { return len(f.attrs) == 0 }

// Keys returns the keys in insertion order.
func (f Format) Keys() []Key {
	keys := make([]Key, len(f.attrs))
	for i, a := range f.attrs {
		keys[i] = a.Key
	}
	return keys
}

// Attributes returns a copy of the attributes in insertion order.
func (f Format) Attributes() []Attribute {
	return f.clone(0).attrs
}

// All iterates over the attributes in insertion order.
func (f Format) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, a := range f.attrs {
			if !yield(a.Key, a.Value) {
				return
			}
		}
	}
}

// Equal reports whether f and o hold the same key/value pairs. Order is not
// significant.
func (f Format) Equal(o Format) bool {
	if len(f.attrs) != len(o.attrs) {
		return false
	}
	for _, a := range f.attrs {
		v, ok := o.Get(a.Key)
		if !ok || v != a.Value {
			return false
		}
	}
	return true
}

// Int returns an integer attribute.
func (f Format) Int(k Key) (int, bool) {
	v, ok := f.Get(k)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

func (f Format) Encoding() (Encoding, bool) {
	v, ok := f.Get(KeyEncoding)
	if !ok {
		return EncodingUnknown, false
	}
	e, ok := v.(Encoding)
	return e, ok
}

func (f Format) DataType() (DataType, bool) {
	v, ok := f.Get(KeyDataType)
	if !ok {
		return Int, false
	}
	d, ok := v.(DataType)
	return d, ok
}

func (f Format) Endianness() (endian.Order, bool) {
	v, ok := f.Get(KeyEndianness)
	if !ok {
		return endian.Little, false
	}
	o, ok := v.(endian.Order)
	return o, ok
}

func (f Format) Speakers() (Speakers, bool) {
	v, ok := f.Get(KeySpeakers)
	if !ok {
		return 0, false
	}
	s, ok := v.(Speakers)
	return s, ok
}

func (f Format) SampleRate() (int, bool) { return f.Int(KeySampleRate) }
func (f Format) Depth() (int, bool)      { return f.Int(KeyDepth) }
func (f Format) Channels() (int, bool)   { return f.Int(KeyChannels) }

// PackedDepth returns Pcm.Packing when present and Pcm.Depth otherwise.
func (f Format) PackedDepth() (int, bool) {
	if p, ok := f.Int(KeyPacking); ok {
		return p, true
	}
	return f.Depth()
}

// Validate checks the PCM attributes for consistency.
func (f Format) Validate() error {
	enc, ok := f.Encoding()
	if !ok {
		return fmt.Errorf("%w: missing %s", ErrArgument, KeyEncoding)
	}
	if enc != EncodingPcm {
		return nil
	}

	for _, k := range []Key{KeySampleRate, KeyDepth, KeyChannels} {
		v, ok := f.Int(k)
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrArgument, k)
		}
		if v <= 0 {
			return fmt.Errorf("%w: %s = %d", ErrArgument, k, v)
		}
	}

	depth, _ := f.Depth()
	if p, ok := f.Int(KeyPacking); ok && p < depth {
		return fmt.Errorf("%w: %s %d below %s %d", ErrArgument, KeyPacking, p, KeyDepth, depth)
	}
	return nil
}

func (f Format) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, a := range f.attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", a.Key, a.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}
