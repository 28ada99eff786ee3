// SPDX-License-Identifier: EPL-2.0

// Package convert maps between binary wave.Format headers and audio.Format
// attribute bags.
//
// The Try* functions are the primary API: they report "no match" with a
// false result, since unsupported formats are routine on real files. ToAudio
// and ToWave return the reason instead, wrapped around
// audio.ErrUnsupportedFormat or audio.ErrFormat.
package convert

import (
	"fmt"
	"math"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/wave"
)

// TryToAudio lifts a wave header into an attribute bag.
func TryToAudio(w *wave.Format) (audio.Format, bool) {
	f, err := ToAudio(w)
	return f, err == nil
}

// TryToWave lowers an attribute bag to the smallest wave header that can
// express it.
func TryToWave(f audio.Format) (*wave.Format, bool) {
	w, err := ToWave(f)
	return w, err == nil
}

// ToAudio is TryToAudio returning the reason of a failed conversion.
func ToAudio(w *wave.Format) (audio.Format, error) {
	if w == nil {
		return audio.Format{}, fmt.Errorf("%w: nil wave format", audio.ErrArgument)
	}

	var f audio.Format

	switch w.Tag() {
	case wave.TagExtensible:
		x, err := w.Extend()
		if err != nil {
			return audio.Format{}, err
		}
		f, err = extensibleToAudio(x)
		if err != nil {
			return audio.Format{}, err
		}
	case wave.TagPCM:
		f = audio.NewPCM(w.Order(), audio.Int, int(w.SamplesPerSec), int(w.BitsPerSample), int(w.Channels))
	case wave.TagIEEEFloat:
		f = audio.NewPCM(w.Order(), audio.Ieee754, int(w.SamplesPerSec), int(w.BitsPerSample), int(w.Channels))
	default:
		return audio.Format{}, fmt.Errorf("%w: format tag %v", audio.ErrUnsupportedFormat, w.Tag())
	}

	if err := f.Validate(); err != nil {
		return audio.Format{}, fmt.Errorf("%w: %w", audio.ErrFormat, err)
	}
	return f, nil
}

func extensibleToAudio(w *wave.Format) (audio.Format, error) {
	ext, _ := w.Extensible()

	var dt audio.DataType
	switch ext.SubFormat {
	case wave.SubTypePCM:
		dt = audio.Int
	case wave.SubTypeIEEEFloat:
		dt = audio.Ieee754
	default:
		if tag, ok := wave.TagOf(ext.SubFormat); ok {
			return audio.Format{}, fmt.Errorf("%w: sub-format %v", audio.ErrUnsupportedFormat, tag)
		}
		return audio.Format{}, fmt.Errorf("%w: sub-format %v", audio.ErrUnsupportedFormat, ext.SubFormat)
	}

	valid := ext.ValidBitsPerSample()
	if valid == 0 {
		valid = w.BitsPerSample
	}
	if valid > w.BitsPerSample {
		return audio.Format{}, fmt.Errorf("%w: %d valid bits in a %d bit container",
			audio.ErrFormat, valid, w.BitsPerSample)
	}

	f := audio.NewPCM(w.Order(), dt, int(w.SamplesPerSec), int(valid), int(w.Channels))
	if valid != w.BitsPerSample {
		f = f.WithPacking(int(w.BitsPerSample))
	}
	if ext.ChannelMask != 0 {
		f = f.WithSpeakers(audio.Speakers(ext.ChannelMask))
	}
	return f, nil
}

// ToWave is TryToWave returning the reason of a failed conversion.
func ToWave(f audio.Format) (*wave.Format, error) {
	enc, ok := f.Encoding()
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", audio.ErrUnsupportedFormat, audio.KeyEncoding)
	}
	if enc != audio.EncodingPcm {
		return nil, fmt.Errorf("%w: unsupported conversion of encoding %v", audio.ErrUnsupportedFormat, enc)
	}

	dt := audio.Int
	if v, ok := f.Get(audio.KeyDataType); ok {
		if dt, ok = v.(audio.DataType); !ok {
			return nil, fmt.Errorf("%w: unsupported conversion of %s %T", audio.ErrUnsupportedFormat, audio.KeyDataType, v)
		}
	}
	if dt != audio.Int && dt != audio.Ieee754 {
		return nil, fmt.Errorf("%w: unsupported conversion of data type %v", audio.ErrUnsupportedFormat, dt)
	}

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrUnsupportedFormat, err)
	}

	rate, _ := f.SampleRate()
	depth, _ := f.Depth()
	channels, _ := f.Channels()
	packed, _ := f.PackedDepth()

	if packed%8 != 0 {
		return nil, fmt.Errorf("%w: %d bit container is not byte aligned", audio.ErrUnsupportedFormat, packed)
	}
	if dt == audio.Ieee754 && (depth != packed || (depth != 32 && depth != 64)) {
		return nil, fmt.Errorf("%w: unsupported conversion of %v with %d/%d bits",
			audio.ErrUnsupportedFormat, dt, depth, packed)
	}

	blockAlign := int64(channels) * int64(packed/8)
	avgBytesPerSec := blockAlign * int64(rate)
	if channels > math.MaxUint16 || blockAlign > math.MaxUint16 ||
		int64(rate) > math.MaxUint32 || avgBytesPerSec > math.MaxUint32 || depth > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d channels at %dHz/%d bits overflow the header fields",
			audio.ErrUnsupportedFormat, channels, rate, packed)
	}

	order, ok := f.Endianness()
	if !ok {
		order = endian.Little
	}

	h := wave.Header{
		Channels:       uint16(channels),
		SamplesPerSec:  uint32(rate),
		AvgBytesPerSec: uint32(avgBytesPerSec),
		BlockAlign:     uint16(blockAlign),
		BitsPerSample:  uint16(packed),
	}

	var speakers audio.Speakers
	hasSpeakers := f.Has(audio.KeySpeakers)
	if hasSpeakers {
		v, _ := f.Get(audio.KeySpeakers)
		s, ok := v.(audio.Speakers)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported conversion of %s %T", audio.ErrUnsupportedFormat, audio.KeySpeakers, v)
		}
		if s == 0 {
			return nil, fmt.Errorf("%w: %s names no speaker positions", audio.ErrUnsupportedFormat, audio.KeySpeakers)
		}
		speakers = s
	}
	if hasSpeakers && speakers.Count() > channels {
		return nil, fmt.Errorf("%w: speaker mask %v names %d positions for %d channels",
			audio.ErrUnsupportedFormat, speakers, speakers.Count(), channels)
	}

	if !hasSpeakers && depth == packed && plainDepth(packed) {
		tag := wave.TagPCM
		if dt == audio.Ieee754 {
			tag = wave.TagIEEEFloat
		}
		return wave.NewPlain(order, tag, h, nil)
	}

	sub := wave.SubTypePCM
	if dt == audio.Ieee754 {
		sub = wave.SubTypeIEEEFloat
	}
	return wave.NewExtensible(order, h, wave.Extensible{
		Samples:     uint16(depth),
		ChannelMask: uint32(speakers),
		SubFormat:   sub,
	})
}

func plainDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32, 64:
		return true
	default:
		return false
	}
}
