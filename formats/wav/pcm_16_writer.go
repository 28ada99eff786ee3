// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/convert"
	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/riff"
	"github.com/ik5/audfmt/wave"
)

// canonical 44 byte header: RIFF header, 16 byte fmt chunk, data chunk header
const pcm16HeaderSize = riff.HeaderSize + riff.ChunkHeaderSize + wave.HeaderSize + riff.ChunkHeaderSize

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.  samples must be int16 PCM.
// Unlike Write it does not need a seekable sink, the sizes are known up front.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	wf, err := convert.ToWave(audio.NewPCM(endian.Little, audio.Int, sampleRate, 16, 1))
	if err != nil {
		return fmt.Errorf("wav16: %w", err)
	}

	dataSize := uint32(len(samples) * 2)
	riffSize := pcm16HeaderSize - riff.ChunkHeaderSize + dataSize

	header := make([]byte, 0, pcm16HeaderSize)
	header = append(header, riff.RIFF[:]...)
	header = binary.LittleEndian.AppendUint32(header, riffSize)
	header = append(header, riff.WAVE[:]...)
	header = append(header, riff.Fmt[:]...)
	header = binary.LittleEndian.AppendUint32(header, wave.HeaderSize)
	header = append(header, fmtPayload(wf)...)
	header = append(header, riff.Data[:]...)
	header = binary.LittleEndian.AppendUint32(header, dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunkSize = 8192 // samples per write
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
