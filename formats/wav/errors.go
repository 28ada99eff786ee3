package wav

import (
	"fmt"

	"github.com/ik5/audfmt/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", audio.ErrFormat)
	ErrMissingFmtChunk      = fmt.Errorf("%w: missing fmt chunk", audio.ErrFormat)
	ErrMissingDataChunk     = fmt.Errorf("%w: missing data chunk", audio.ErrFormat)
	ErrPartialFrame         = fmt.Errorf("%w: data is not a whole number of frames", audio.ErrArgument)
	ErrUnsupportedWavLayout = fmt.Errorf("%w: unsupported WAV layout", audio.ErrUnsupportedFormat)
)
