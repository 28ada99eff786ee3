// SPDX-License-Identifier: EPL-2.0

// Package vorbis describes the PCM stream an Ogg Vorbis file decodes to.
//
// This package uses github.com/jfreymuth/oggvorbis to parse the Vorbis
// identification header.
//
//	info, err := vorbis.ReadInfo(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Format, info.Duration())
//
// # Output Format
//
// oggvorbis decodes to interleaved float32 samples, so the reported format is
// 32-bit IEEE float with the stream's channel count and sample rate. Streams
// with one to eight channels carry the speaker layout of the Vorbis channel
// mapping; wider streams have an application defined order and no
// Pcm.Speakers attribute.
//
// Length is only known for seekable inputs.
//
// Prober implements audio.Prober for use with an audio.Registry.
package vorbis
