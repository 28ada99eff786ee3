// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"io"

	"github.com/ik5/audfmt/audio"
)

// Prober describes AIFF and AIFC files.
type Prober struct{}

func (Prober) Probe(rs io.ReadSeeker) (audio.Format, error) {
	info, err := ReadInfo(rs)
	if err != nil {
		return audio.Format{}, err
	}
	return info.Format, nil
}
