package vorbis

import (
	"fmt"

	"github.com/ik5/audfmt/audio"
)

// ErrNotVorbisFile indicates the stream has no Vorbis identification header
var ErrNotVorbisFile = fmt.Errorf("%w: not an Ogg Vorbis file", audio.ErrFormat)
