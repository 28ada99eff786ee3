// SPDX-License-Identifier: EPL-2.0

// Package mp3 describes the PCM stream an MP3 file decodes to.
//
// This package uses github.com/hajimehoshi/go-mp3 to read the first frame
// header and, for seekable inputs, to scan the stream length.
//
//	info, err := mp3.ReadInfo(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Format, info.Duration())
//
// # Output Format
//
// go-mp3 always decodes to:
//   - 16-bit signed little-endian integer samples
//   - 2 interleaved channels (mono files are duplicated)
//   - the sample rate of the MP3 file
//
// The reported audio.Format carries the Stereo speaker layout, so converting
// it to a WAVE format yields a WAVEFORMATEXTENSIBLE.
//
// Prober implements audio.Prober for use with an audio.Registry.
package mp3
