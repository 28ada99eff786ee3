// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/convert"
	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/wave"
)

// NewEncoder returns a go-audio encoder configured from af, for callers that
// already produce goaudio.IntBuffer frames. go-audio only writes plain
// little-endian fmt chunks, other layouts fail with ErrUnsupportedWavLayout.
func NewEncoder(ws io.WriteSeeker, af audio.Format) (*gowav.Encoder, error) {
	wf, err := convert.ToWave(af)
	if err != nil {
		return nil, err
	}
	if wf.Kind() != wave.PlainKind || wf.Order() != endian.Little {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, wf)
	}

	return gowav.NewEncoder(ws, int(wf.SamplesPerSec), int(wf.BitsPerSample), int(wf.Channels), int(wf.Tag())), nil
}
