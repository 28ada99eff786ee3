// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Chunk is a raw chunk for Container.
type Chunk struct {
	ID   string
	Data []byte
	// Size overrides the declared size when non-zero.
	Size uint32
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Container builds a container by hand, so the chunk code can be tested
// against bytes it did not produce. A negative size is computed from the
// chunks. Payloads are padded to even sizes.
func Container(sig, form string, bigEndian bool, size int64, chunks ...Chunk) []byte {
	var order byteOrder = binary.LittleEndian
	if bigEndian {
		order = binary.BigEndian
	}

	body := []byte(form)
	for _, c := range chunks {
		declared := c.Size
		if declared == 0 {
			declared = uint32(len(c.Data))
		}
		body = append(body, c.ID...)
		body = order.AppendUint32(body, declared)
		body = append(body, c.Data...)
		if len(c.Data)%2 == 1 {
			body = append(body, 0)
		}
	}

	if size < 0 {
		size = int64(len(body))
	}

	out := append([]byte(sig), 0, 0, 0, 0)
	order.PutUint32(out[4:], uint32(size))
	return append(out, body...)
}

// FmtPCM is the 16 byte payload of a plain PCM fmt chunk, little-endian.
func FmtPCM(channels, sampleRate, bitDepth int) []byte {
	align := channels * bitDepth / 8
	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:], 1)
	binary.LittleEndian.PutUint16(b[2:], uint16(channels))
	binary.LittleEndian.PutUint32(b[4:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(b[8:], uint32(align*sampleRate))
	binary.LittleEndian.PutUint16(b[12:], uint16(align))
	binary.LittleEndian.PutUint16(b[14:], uint16(bitDepth))
	return b
}

// Ramp returns n interleaved samples counting up from zero, wrapped to the
// signed range of bitDepth.
func Ramp(n, bitDepth int) []int {
	span := 1 << (bitDepth - 1)
	out := make([]int, n)
	for i := range out {
		out[i] = i%(2*span) - span
	}
	return out
}

func intBuffer(sampleRate, bitDepth, channels int, samples []int) *goaudio.IntBuffer {
	return &goaudio.IntBuffer{
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: channels},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
}

// EncodeWAV writes a PCM WAV file with the go-audio encoder.
func EncodeWAV(sampleRate, bitDepth, channels int, samples []int) ([]byte, error) {
	b := NewBuffer(nil)
	enc := wav.NewEncoder(b, sampleRate, bitDepth, channels, 1)
	if err := enc.Write(intBuffer(sampleRate, bitDepth, channels, samples)); err != nil {
		return nil, fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing wav encoder: %w", err)
	}
	return b.Bytes(), nil
}

// EncodeAIFF writes an AIFF file with the go-audio encoder.
func EncodeAIFF(sampleRate, bitDepth, channels int, samples []int) ([]byte, error) {
	b := NewBuffer(nil)
	enc := aiff.NewEncoder(b, sampleRate, bitDepth, channels)
	if err := enc.Write(intBuffer(sampleRate, bitDepth, channels, samples)); err != nil {
		return nil, fmt.Errorf("encoding aiff: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing aiff encoder: %w", err)
	}
	return b.Bytes(), nil
}
