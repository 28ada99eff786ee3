// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"io"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/convert"
)

// Prober describes WAVE files. It satisfies audio.Prober.
type Prober struct{}

func (Prober) Probe(rs io.ReadSeeker) (audio.Format, error) {
	f, err := Read(rs)
	if err != nil {
		return audio.Format{}, err
	}
	// reports why the fmt chunk has no attribute mapping
	return convert.ToAudio(f.Wave)
}
