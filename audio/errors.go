// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"

	"github.com/ik5/audfmt/utils"
)

var (
	// ErrFormat reports malformed binary data: short buffers, bad signatures,
	// wrong extension lengths.
	ErrFormat = errors.New("malformed format data")

	// ErrUnsupportedFormat reports a format that was understood but cannot be
	// represented by the requested encoding.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrArgument reports invalid numeric input.
	ErrArgument = utils.ErrArgument

	// ErrNoProber is returned by Registry.Probe for unknown format names.
	ErrNoProber = errors.New("no prober registered for format")
)
