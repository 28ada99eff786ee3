// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/audfmt/endian"
)

func TestNewPCM_KeysInOrder(t *testing.T) {
	t.Parallel()

	f := NewPCM(endian.Little, Int, 44100, 16, 2)

	want := []Key{KeyEndianness, KeyEncoding, KeySampleRate, KeyDepth, KeyChannels, KeyDataType}
	if got := f.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if rate, ok := f.SampleRate(); !ok || rate != 44100 {
		t.Errorf("SampleRate() = %d, %v", rate, ok)
	}
	if enc, ok := f.Encoding(); !ok || enc != EncodingPcm {
		t.Errorf("Encoding() = %v, %v", enc, ok)
	}
	if f.Has(KeySpeakers) {
		t.Error("Has(KeySpeakers) = true for a plain PCM format")
	}
}

func TestFormat_WithIsCopy(t *testing.T) {
	t.Parallel()

	base := NewPCM(endian.Big, Ieee754, 48000, 32, 6)
	surround := base.WithSpeakers(Surround5Point1)

	if base.Has(KeySpeakers) {
		t.Error("With() modified the receiver")
	}
	if s, ok := surround.Speakers(); !ok || s != Surround5Point1 {
		t.Errorf("Speakers() = %v, %v", s, ok)
	}

	replaced := surround.With(KeySampleRate, 96000)
	if rate, _ := surround.SampleRate(); rate != 48000 {
		t.Errorf("receiver sample rate changed to %d", rate)
	}
	if rate, _ := replaced.SampleRate(); rate != 96000 {
		t.Errorf("With() sample rate = %d, want 96000", rate)
	}
	if replaced.Keys()[2] != KeySampleRate {
		t.Error("With() on an existing key moved it")
	}

	dropped := replaced.Without(KeySpeakers)
	if dropped.Has(KeySpeakers) || !replaced.Has(KeySpeakers) {
		t.Error("Without() did not produce an independent copy")
	}
}

func TestFormat_NormalizesIntegers(t *testing.T) {
	t.Parallel()

	f := New(Attribute{KeyChannels, uint16(2)}, Attribute{KeySampleRate, uint32(8000)})

	if ch, ok := f.Channels(); !ok || ch != 2 {
		t.Errorf("Channels() = %d, %v", ch, ok)
	}
	if !f.Equal(New(Attribute{KeySampleRate, 8000}, Attribute{KeyChannels, 2})) {
		t.Error("Equal() depends on integer width or order")
	}
}

func TestFormat_DuplicateKeys(t *testing.T) {
	t.Parallel()

	f := New(
		Attribute{KeyDepth, 16},
		Attribute{KeyChannels, 1},
		Attribute{KeyDepth, 24},
	)

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if d, _ := f.Depth(); d != 24 {
		t.Errorf("Depth() = %d, want 24", d)
	}
	if f.Keys()[0] != KeyDepth {
		t.Error("duplicate key lost its first position")
	}
}

func TestFormat_Equal(t *testing.T) {
	t.Parallel()

	a := NewPCM(endian.Little, Int, 44100, 16, 2)

	tests := []struct {
		name string
		b    Format
		want bool
	}{
		{"same", NewPCM(endian.Little, Int, 44100, 16, 2), true},
		{"other endianness", NewPCM(endian.Big, Int, 44100, 16, 2), false},
		{"extra key", a.WithSpeakers(Stereo), false},
		{"missing key", a.Without(KeyDataType), false},
		{"empty", Format{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_WithRejectsIncomparable(t *testing.T) {
	t.Parallel()

	base := NewPCM(endian.Little, Int, 44100, 16, 2)

	tests := []struct {
		name  string
		value any
	}{
		{"slice", []int{1, 2}},
		{"map", map[string]int{"a": 1}},
		{"func", func() {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				if recover() == nil {
					t.Errorf("With(%T) did not panic", tt.value)
				}
			}()
			_ = base.With("Custom", tt.value)
		})
	}

	// comparable values still work, and Equal stays safe
	f := base.With("Custom", "label").With("Nothing", nil)
	if !f.Equal(base.With("Custom", "label").With("Nothing", nil)) {
		t.Error("Equal() = false for identical attributes")
	}
}

func TestFormat_All(t *testing.T) {
	t.Parallel()

	f := NewPCM(endian.Little, Int, 8000, 8, 1)

	var keys []Key
	for k := range f.All() {
		keys = append(keys, k)
		if k == KeySampleRate {
			break
		}
	}
	if len(keys) != 3 {
		t.Errorf("All() yielded %v, want to stop after 3 keys", keys)
	}
}

func TestFormat_PackedDepth(t *testing.T) {
	t.Parallel()

	f := NewPCM(endian.Little, Int, 48000, 24, 2)
	if p, _ := f.PackedDepth(); p != 24 {
		t.Errorf("PackedDepth() = %d, want 24", p)
	}
	if p, _ := f.WithPacking(32).PackedDepth(); p != 32 {
		t.Errorf("PackedDepth() with packing = %d, want 32", p)
	}
}

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	valid := NewPCM(endian.Little, Int, 48000, 24, 2)

	tests := []struct {
		name    string
		f       Format
		wantErr bool
	}{
		{"valid", valid, false},
		{"valid packing", valid.WithPacking(32), false},
		{"packing below depth", valid.WithPacking(16), true},
		{"zero rate", valid.With(KeySampleRate, 0), true},
		{"missing channels", valid.Without(KeyChannels), true},
		{"missing encoding", valid.Without(KeyEncoding), true},
		{"non pcm", New(Attribute{KeyEncoding, EncodingAdpcm}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.f.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrArgument) {
				t.Errorf("Validate() error = %v, want ErrArgument", err)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	f := NewPCM(endian.Little, Int, 44100, 16, 2)
	want := "{Endianness=little, Encoding=Pcm, Pcm.SampleRate=44100, Pcm.Depth=16, Pcm.Channels=2, Pcm.DataType=Int}"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
