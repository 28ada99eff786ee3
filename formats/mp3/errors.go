package mp3

import (
	"fmt"

	"github.com/ik5/audfmt/audio"
)

// ErrNotMp3File indicates go-mp3 could not find a frame to decode
var ErrNotMp3File = fmt.Errorf("%w: not an MP3 file", audio.ErrFormat)
