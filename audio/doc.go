// SPDX-License-Identifier: EPL-2.0

// Package audio provides the format model shared by every other package.
//
// This package contains:
//   - Format, an ordered immutable bag of key/value attributes
//   - the well known keys, Encoding and DataType enums and Speakers masks
//   - the Prober interface and a Registry of probers by format name
//   - the error taxonomy wrapped by every package of the module
//
// # Formats
//
// A Format describes samples, not files. Attributes keep their insertion
// order and replacing a key keeps its position:
//
//	af := audio.NewPCM(endian.Little, audio.Int, 48000, 24, 2).
//	    WithSpeakers(audio.Stereo)
//	rate, _ := af.SampleRate()
//	af = af.With(audio.KeySampleRate, 44100)
//
// Two formats are Equal when they hold the same attributes in any order.
// Validate checks that the PCM attributes are present and positive.
//
// Pcm.Packing is the container width when it differs from Pcm.Depth, such as
// 20-bit samples stored in 24 bits. PackedDepth returns whichever applies.
//
// # Prober Registry
//
// The registry maps format names to probers:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Prober{})
//	af, err := registry.Probe("wav", file)
//
// # go-audio
//
// PCMFormat and FromPCMFormat convert to and from github.com/go-audio/audio
// formats, which only carry a channel count and sample rate.
//
// # Error Handling
//
//   - ErrFormat: malformed binary data
//   - ErrUnsupportedFormat: well formed but not representable
//   - ErrArgument: invalid numeric input
//   - ErrNoProber: Registry.Probe with an unknown name
package audio
