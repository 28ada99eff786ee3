// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"errors"
	"fmt"

	"github.com/ik5/audfmt/audio"
)

var (
	// ErrBadSignature is returned when a stream does not start with a known
	// container signature.
	ErrBadSignature = fmt.Errorf("%w: unknown container signature", audio.ErrFormat)

	// ErrBadDS64 reports a missing or malformed ds64 chunk in an RF64 stream.
	ErrBadDS64 = fmt.Errorf("%w: bad ds64 chunk", audio.ErrFormat)

	// ErrPayloadTooLong is returned when a chunk payload writer produces more
	// bytes than declared.
	ErrPayloadTooLong = fmt.Errorf("%w: payload exceeds the declared chunk size", audio.ErrArgument)

	// ErrTooLarge is returned when a size does not fit the container and no
	// ds64 area was reserved.
	ErrTooLarge = fmt.Errorf("%w: size does not fit a 32 bit chunk header", audio.ErrUnsupportedFormat)

	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("riff: writer is closed")
)
