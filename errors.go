package audfmt

import (
	"fmt"

	"github.com/ik5/audfmt/audio"
)

// ErrUnknownFormat indicates no magic number matched
var ErrUnknownFormat = fmt.Errorf("%w: unknown file type", audio.ErrUnsupportedFormat)
