// SPDX-License-Identifier: EPL-2.0

package endian

import "errors"

var (
	// ErrOutOfRange is returned when an offset/length pair falls outside the buffer.
	ErrOutOfRange = errors.New("offset out of range")
)
