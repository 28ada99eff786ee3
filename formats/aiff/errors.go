package aiff

import (
	"fmt"

	"github.com/ik5/audfmt/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", audio.ErrFormat)

	// ErrMissingCommChunk indicates the COMM chunk is absent or too short
	ErrMissingCommChunk = fmt.Errorf("%w: missing COMM chunk", audio.ErrFormat)

	// ErrUnsupportedCompression indicates an AIFC compression type we cannot describe
	ErrUnsupportedCompression = fmt.Errorf("%w: AIFC compression", audio.ErrUnsupportedFormat)
)
