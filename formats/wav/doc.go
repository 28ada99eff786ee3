// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAVE files on top of the riff chunk engine.
//
// # Reading
//
// Read walks the container, decodes the fmt chunk into a wave.Format and maps
// it to an audio.Format when the encoding is PCM or IEEE float:
//
//	f, err := wav.Read(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(f.Format, f.Duration())
//
//	pcm, err := f.PCM() // io.Reader over the data chunk
//
// RIFF, RIFX (big-endian) and RF64 files are accepted. A file cut short is
// read as far as it goes: the data chunk is flagged Truncated and PCM stops
// at the end of the stream.
//
// # Writing
//
// Write and Encode take an audio.Format and pick the smallest fmt chunk that
// describes it: a 16 byte PCM header, a WAVEFORMATEX for IEEE float, or a
// WAVEFORMATEXTENSIBLE when speakers or a packed container are involved.
// Non-PCM files get a fact chunk. Big-endian formats produce RIFX files.
//
//	af := audio.NewPCM(endian.Little, audio.Int, 48000, 24, 2)
//	err := wav.Write(file, af, pcm)
//
// Pass riff.WithDS64Reserve to allow files past 4 GiB; they are promoted to
// RF64 on close.
//
// WriteWAV16 is a fast path for mono 16-bit PCM that works on a plain
// io.Writer:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # go-audio
//
// NewEncoder returns a github.com/go-audio/wav encoder configured from an
// audio.Format, for code that already works with goaudio.IntBuffer.
//
// # Error Handling
//
// All errors wrap the audio taxonomy, so errors.Is(err, audio.ErrFormat)
// catches every malformed file:
//   - ErrNotWavFile: not a RIFF/RIFX/RF64 WAVE container
//   - ErrMissingFmtChunk, ErrMissingDataChunk: required chunk absent
//   - ErrPartialFrame: sample data is not a whole number of frames
//   - ErrUnsupportedWavLayout: layout go-audio cannot write
package wav
