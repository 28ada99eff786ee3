// SPDX-License-Identifier: EPL-2.0

// Package aiff describes AIFF and AIFC (Audio Interchange File Format) files.
//
// The container is walked with the riff package (FORM chunks are big-endian)
// and the COMM chunk is decoded with github.com/go-audio/aiff.
//
// # Describing AIFF Files
//
//	info, err := aiff.ReadInfo(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(info.Format, info.Frames, info.Duration())
//
// Sample points narrower than a byte multiple are reported with a
// Pcm.Packing attribute holding the stored width. AIFC files map their
// compression type:
//   - NONE, twos: big-endian integer PCM
//   - sowt: little-endian integer PCM
//   - fl32, fl64: IEEE float PCM
//   - ulaw, alaw: 8-bit companded samples
//
// Prober implements audio.Prober for use with an audio.Registry.
//
// # Error Handling
//
//   - ErrNotAiffFile: not a FORM AIFF/AIFC container
//   - ErrMissingCommChunk: COMM chunk absent or short
//   - ErrUnsupportedCompression: AIFC compression type not listed above
package aiff
