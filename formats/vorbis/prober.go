// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
	"github.com/jfreymuth/oggvorbis"
)

// oggvorbis decodes to interleaved float32
const outDepth = 32

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
}

// channel mappings of the Vorbis I family 0, indexed by channel count
var mappings = [...]audio.Speakers{
	1: audio.Mono,
	2: audio.Stereo,
	3: audio.Stereo | audio.SpeakerFrontCenter,
	4: audio.Quad,
	5: audio.Quad | audio.SpeakerFrontCenter,
	6: audio.Surround5Point1,
	7: audio.Surround5Point1Side | audio.SpeakerBackCenter,
	8: audio.Surround7Point1Side,
}

// Info describes the PCM stream oggvorbis decodes.
type Info struct {
	Format audio.Format
	// Frames is zero when the stream cannot be seeked.
	Frames int64
}

func (i *Info) Duration() time.Duration {
	rate, ok := i.Format.SampleRate()
	if !ok || rate <= 0 {
		return 0
	}
	return time.Duration(i.Frames) * time.Second / time.Duration(rate)
}

// ReadInfo parses the Vorbis headers of r.
func ReadInfo(r io.Reader) (*Info, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	return describe(dec)
}

func describe(dec oggReader) (*Info, error) {
	ch := dec.Channels()
	af := audio.NewPCM(endian.Little, audio.Ieee754, dec.SampleRate(), outDepth, ch)
	if ch > 0 && ch < len(mappings) {
		af = af.WithSpeakers(mappings[ch])
	}
	if err := af.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return &Info{Format: af, Frames: dec.Length()}, nil
}

// Prober describes the decoded output of Ogg Vorbis files.
type Prober struct{}

func (Prober) Probe(rs io.ReadSeeker) (audio.Format, error) {
	info, err := ReadInfo(rs)
	if err != nil {
		return audio.Format{}, err
	}
	return info.Format, nil
}
