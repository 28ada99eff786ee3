// SPDX-License-Identifier: EPL-2.0

// Package audfmt describes audio files: their container layout and the PCM
// format of their samples.
//
// The building blocks live in subpackages:
//   - audio: the attribute bag format model and the Prober registry
//   - wave: WAVEFORMATEX and WAVEFORMATEXTENSIBLE structures
//   - convert: mapping between wave formats and audio formats
//   - riff: RIFF, RIFX, RF64 and FORM chunk reader and writer
//   - endian, packing, utils: binary codec and integer helpers
//
// # Supported Formats
//
// The package can describe the following file types:
//   - WAV (RIFF, RIFX and RF64) via formats/wav
//   - AIFF and AIFC via formats/aiff
//   - MP3 via formats/mp3 (decoded stream)
//   - Ogg Vorbis via formats/vorbis (decoded stream)
//
// # Quick Start
//
//	f, _ := os.Open("audio.wav")
//	name, af, err := audfmt.ReadFormat(nil, f)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(name, af)
//
// Detect sniffs the magic bytes of a stream and FormatForPath maps file
// extensions, both to the keys used by NewRegistry.
//
// # Error Handling
//
// Errors from every package wrap the taxonomy declared in package audio, so
// callers can test with errors.Is:
//   - audio.ErrFormat: malformed data
//   - audio.ErrUnsupportedFormat: well formed but not representable
//   - audio.ErrArgument: invalid numeric input
package audfmt
