// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audfmt/endian"
)

// PCMFormat returns the go-audio description of f. go-audio only tracks
// channel count and sample rate, the remaining attributes are dropped.
func (f Format) PCMFormat() (*goaudio.Format, error) {
	rate, ok := f.SampleRate()
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrArgument, KeySampleRate)
	}
	channels, ok := f.Channels()
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrArgument, KeyChannels)
	}

	return &goaudio.Format{
		NumChannels: channels,
		SampleRate:  rate,
	}, nil
}

// FromPCMFormat lifts a go-audio format into a Format, adding the attributes
// go-audio does not carry.
func FromPCMFormat(pf *goaudio.Format, order endian.Order, dataType DataType, depth int) (Format, error) {
	if pf == nil {
		return Format{}, fmt.Errorf("%w: nil go-audio format", ErrArgument)
	}

	f := NewPCM(order, dataType, pf.SampleRate, depth, pf.NumChannels)
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}
