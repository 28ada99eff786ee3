// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"time"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
)

// go-mp3 always produces interleaved 16-bit little-endian stereo
const (
	outDepth    = 16
	outChannels = 2
	frameSize   = outChannels * outDepth / 8
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
	Length() int64
}

// Info describes the PCM stream go-mp3 decodes.
type Info struct {
	Format audio.Format
	// Frames is -1 when the stream length is unknown.
	Frames int64
}

// Duration is zero when the length is unknown.
func (i *Info) Duration() time.Duration {
	rate, ok := i.Format.SampleRate()
	if !ok || rate <= 0 || i.Frames < 0 {
		return 0
	}
	return time.Duration(i.Frames) * time.Second / time.Duration(rate)
}

// ReadInfo decodes the first frame of r. Seekable readers are scanned for the
// stream length.
func ReadInfo(r io.Reader) (*Info, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMp3File, err)
	}
	return describe(dec), nil
}

func describe(dec mp3Reader) *Info {
	frames := dec.Length()
	if frames > 0 {
		frames /= frameSize
	}
	return &Info{
		Format: audio.NewPCM(endian.Little, audio.Int, dec.SampleRate(), outDepth, outChannels).
			WithSpeakers(audio.Stereo),
		Frames: frames,
	}
}

// Prober describes the decoded output of MP3 files.
type Prober struct{}

func (Prober) Probe(rs io.ReadSeeker) (audio.Format, error) {
	info, err := ReadInfo(rs)
	if err != nil {
		return audio.Format{}, err
	}
	return info.Format, nil
}
