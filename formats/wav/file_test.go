// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/internal/audiotest"
	"github.com/ik5/audfmt/riff"
	"github.com/ik5/audfmt/wave"
)

func int16LE(samples []int) []byte {
	b := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		b = binary.LittleEndian.AppendUint16(b, uint16(int16(s)))
	}
	return b
}

func TestRead_GoAudioFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		bits     int
		channels int
		frames   int
	}{
		{"mono 8k 16bit", 8000, 16, 1, 100},
		{"stereo 44.1k 16bit", 44100, 16, 2, 441},
		{"stereo 48k 24bit", 48000, 24, 2, 50},
		{"mono 22k 8bit", 22050, 8, 1, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := audiotest.Ramp(tt.frames*tt.channels, tt.bits)
			raw, err := audiotest.EncodeWAV(tt.rate, tt.bits, tt.channels, samples)
			if err != nil {
				t.Fatal(err)
			}

			f, err := Read(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}

			want := audio.NewPCM(endian.Little, audio.Int, tt.rate, tt.bits, tt.channels)
			if !f.Format.Equal(want) {
				t.Errorf("Format = %v, want %v", f.Format, want)
			}
			if f.Wave.Tag() != wave.TagPCM || f.Header.Form != riff.WAVE {
				t.Errorf("Wave = %v, form %v", f.Wave, f.Header.Form)
			}
			if f.Frames() != int64(tt.frames) {
				t.Errorf("Frames() = %d, want %d", f.Frames(), tt.frames)
			}
			wantDur := time.Duration(tt.frames) * time.Second / time.Duration(tt.rate)
			if d := f.Duration(); d != wantDur {
				t.Errorf("Duration() = %v, want %v", d, wantDur)
			}
		})
	}
}

func TestRead_GoAudioSamples(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(2*300, 16)
	raw, err := audiotest.EncodeWAV(16000, 16, 2, samples)
	if err != nil {
		t.Fatal(err)
	}

	f, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	pcm, err := f.PCM()
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(pcm)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, int16LE(samples)) {
		t.Error("PCM() payload differs from the encoded samples")
	}
}

func TestWrite_DecodedByGoAudio(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(2*500, 16)

	out := audiotest.NewBuffer(nil)
	if err := Write(out, audio.NewPCM(endian.Little, audio.Int, 32000, 16, 2), int16LE(samples)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	dec := gowav.NewDecoder(bytes.NewReader(out.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("go-audio rejected the file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer() error = %v", err)
	}
	if buf.Format.SampleRate != 32000 || buf.Format.NumChannels != 2 {
		t.Errorf("go-audio format = %+v", buf.Format)
	}
	if len(buf.Data) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(samples))
	}
	for i := range samples {
		if buf.Data[i] != samples[i] {
			t.Fatalf("sample[%d] = %d, want %d", i, buf.Data[i], samples[i])
		}
	}
}

func TestWrite_RoundTrips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   audio.Format
		wantSig  riff.ID
		wantKind wave.Kind
		wantFact bool
	}{
		{"pcm", audio.NewPCM(endian.Little, audio.Int, 8000, 16, 1), riff.RIFF, wave.PlainKind, false},
		{"big endian", audio.NewPCM(endian.Big, audio.Int, 8000, 16, 2), riff.RIFX, wave.PlainKind, false},
		{"float", audio.NewPCM(endian.Little, audio.Ieee754, 48000, 32, 2), riff.RIFF, wave.PlainKind, true},
		{"5.1", audio.NewPCM(endian.Little, audio.Int, 48000, 24, 6).WithSpeakers(audio.Surround5Point1), riff.RIFF, wave.ExtensibleKind, true},
		{"packed", audio.NewPCM(endian.Little, audio.Int, 96000, 20, 2).WithPacking(24), riff.RIFF, wave.ExtensibleKind, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ch, _ := tt.format.Channels()
			packed, _ := tt.format.PackedDepth()
			frames := 10
			pcm := bytes.Repeat([]byte{0x5A}, frames*ch*packed/8)

			out := audiotest.NewBuffer(nil)
			if err := Write(out, tt.format, pcm); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			f, err := Read(audiotest.NewBuffer(out.Bytes()))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if f.Header.Signature != tt.wantSig || f.Wave.Kind() != tt.wantKind {
				t.Errorf("signature %v kind %v", f.Header.Signature, f.Wave.Kind())
			}
			if !f.Format.Equal(tt.format) {
				t.Errorf("Format = %v, want %v", f.Format, tt.format)
			}
			if f.Frames() != int64(frames) {
				t.Errorf("Frames() = %d", f.Frames())
			}

			fact, ok := f.Header.Find(riff.Fact)
			if ok != tt.wantFact {
				t.Fatalf("fact chunk present = %v", ok)
			}
			if ok {
				r := riff.NewReader(audiotest.NewBuffer(out.Bytes()))
				b, _ := r.ReadChunk(fact)
				if n, _ := endian.ReadU32(b, 0, f.Header.Order); n != uint32(frames) {
					t.Errorf("fact sample count = %d, want %d", n, frames)
				}
			}
		})
	}
}

func TestEncode_MeasuresData(t *testing.T) {
	t.Parallel()

	af := audio.NewPCM(endian.Little, audio.Int, 8000, 8, 1)
	src := bytes.NewReader(bytes.Repeat([]byte{0x80}, 1001))

	out := audiotest.NewBuffer(nil)
	if err := Encode(out, af, src); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	f, err := Read(audiotest.NewBuffer(out.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if f.Data.Size != 1001 || f.Data.PaddedSize != 1002 || f.Frames() != 1001 {
		t.Errorf("Data = %v", f.Data)
	}
	if out.Len() != riff.HeaderSize+8+16+8+1002 {
		t.Errorf("file is %d bytes", out.Len())
	}
}

func TestWrite_RF64(t *testing.T) {
	t.Parallel()

	af := audio.NewPCM(endian.Little, audio.Int, 8000, 16, 1)
	pcm := make([]byte, 200)

	out := audiotest.NewBuffer(nil)
	err := Write(out, af, pcm, riff.WithDS64Reserve(0), riff.WithSizeLimit(128))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := Read(audiotest.NewBuffer(out.Bytes()))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !f.Header.IsRF64() || !f.Data.Extended || f.Frames() != 100 {
		t.Errorf("header %v, data %v", f.Header.Signature, f.Data)
	}
}

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format audio.Format
		pcm    []byte
		want   error
	}{
		{"partial frame", audio.NewPCM(endian.Little, audio.Int, 8000, 16, 2), make([]byte, 6), ErrPartialFrame},
		{"adpcm", audio.NewPCM(endian.Little, audio.Int, 8000, 16, 2).With(audio.KeyEncoding, audio.EncodingAdpcm), nil, audio.ErrUnsupportedFormat},
		{"no rate", audio.NewPCM(endian.Little, audio.Int, 0, 16, 2), nil, audio.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Write(audiotest.NewBuffer(nil), tt.format, tt.pcm); !errors.Is(err, tt.want) {
				t.Errorf("Write() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRead_Extensible(t *testing.T) {
	t.Parallel()

	wf, err := wave.NewExtensible(endian.Little, wave.Header{
		Channels: 2, SamplesPerSec: 44100, AvgBytesPerSec: 44100 * 8, BlockAlign: 8, BitsPerSample: 32,
	}, wave.Extensible{Samples: 32, ChannelMask: uint32(audio.Stereo), SubFormat: wave.SubTypeIEEEFloat})
	if err != nil {
		t.Fatal(err)
	}

	raw := audiotest.Container("RIFF", "WAVE", false, -1,
		audiotest.Chunk{ID: "fmt ", Data: wf.Marshal()},
		audiotest.Chunk{ID: "fact", Data: []byte{1, 0, 0, 0}},
		audiotest.Chunk{ID: "data", Data: make([]byte, 8)},
	)

	f, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if f.Wave.Kind() != wave.ExtensibleKind || !f.Wave.Equal(wf) {
		t.Errorf("Wave = %v, want %v", f.Wave, wf)
	}
	if s, _ := f.Format.Speakers(); s != audio.Stereo {
		t.Errorf("Speakers() = %v", s)
	}
}

func TestRead_Truncated(t *testing.T) {
	t.Parallel()

	raw, err := audiotest.EncodeWAV(8000, 16, 1, audiotest.Ramp(100, 16))
	if err != nil {
		t.Fatal(err)
	}

	f, err := Read(bytes.NewReader(raw[:len(raw)-50]))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !f.Data.Truncated || f.Frames() != 100 {
		t.Errorf("Data = %v, Frames() = %d", f.Data, f.Frames())
	}

	pcm, _ := f.PCM()
	got, _ := io.ReadAll(pcm)
	if len(got) != 150 {
		t.Errorf("PCM() = %d bytes, want 150", len(got))
	}
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	fmtChunk := audiotest.Chunk{ID: "fmt ", Data: audiotest.FmtPCM(1, 8000, 16)}
	dataChunk := audiotest.Chunk{ID: "data", Data: make([]byte, 4)}

	tests := []struct {
		name string
		raw  []byte
		want error
	}{
		{"not riff", []byte("NOT A WAV FILE DATA"), ErrNotWavFile},
		{"wrong form", audiotest.Container("RIFF", "AVI ", false, -1, dataChunk), ErrNotWavFile},
		{"aiff", audiotest.Container("FORM", "WAVE", true, -1, fmtChunk, dataChunk), ErrNotWavFile},
		{"no fmt", audiotest.Container("RIFF", "WAVE", false, -1, dataChunk), ErrMissingFmtChunk},
		{"no data", audiotest.Container("RIFF", "WAVE", false, -1, fmtChunk), ErrMissingDataChunk},
		{"short fmt", audiotest.Container("RIFF", "WAVE", false, -1,
			audiotest.Chunk{ID: "fmt ", Data: make([]byte, 10)}, dataChunk), audio.ErrFormat},
		{"empty", nil, audio.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(bytes.NewReader(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Errorf("Read() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, audio.ErrFormat) {
				t.Errorf("Read() error = %v is not a format error", err)
			}
		})
	}
}

func TestProber(t *testing.T) {
	t.Parallel()

	raw, err := audiotest.EncodeWAV(11025, 16, 1, audiotest.Ramp(10, 16))
	if err != nil {
		t.Fatal(err)
	}

	var p audio.Prober = Prober{}
	f, err := p.Probe(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	if rate, _ := f.SampleRate(); rate != 11025 {
		t.Errorf("SampleRate() = %d", rate)
	}

	adpcm := make([]byte, 20)
	binary.LittleEndian.PutUint16(adpcm[0:], uint16(wave.TagADPCM))
	binary.LittleEndian.PutUint16(adpcm[2:], 1)
	binary.LittleEndian.PutUint32(adpcm[4:], 8000)
	binary.LittleEndian.PutUint16(adpcm[14:], 4)
	binary.LittleEndian.PutUint16(adpcm[16:], 2)

	raw = audiotest.Container("RIFF", "WAVE", false, -1,
		audiotest.Chunk{ID: "fmt ", Data: adpcm},
		audiotest.Chunk{ID: "data", Data: make([]byte, 4)},
	)

	wf, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !wf.Format.IsZero() || wf.Wave.Tag() != wave.TagADPCM {
		t.Errorf("ADPCM file = %v, %v", wf.Wave, wf.Format)
	}
	if _, err := p.Probe(bytes.NewReader(raw)); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Probe(adpcm) error = %v", err)
	}
}

func TestNewEncoder(t *testing.T) {
	t.Parallel()

	samples := audiotest.Ramp(64, 16)

	out := audiotest.NewBuffer(nil)
	enc, err := NewEncoder(out, audio.NewPCM(endian.Little, audio.Int, 8000, 16, 1))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{SampleRate: 8000, NumChannels: 1},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := Read(audiotest.NewBuffer(out.Bytes()))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if f.Frames() != 64 {
		t.Errorf("Frames() = %d", f.Frames())
	}

	for _, af := range []audio.Format{
		audio.NewPCM(endian.Big, audio.Int, 8000, 16, 1),
		audio.NewPCM(endian.Little, audio.Int, 8000, 16, 2).WithSpeakers(audio.Stereo),
	} {
		if _, err := NewEncoder(audiotest.NewBuffer(nil), af); !errors.Is(err, ErrUnsupportedWavLayout) {
			t.Errorf("NewEncoder(%v) error = %v", af, err)
		}
	}
}
