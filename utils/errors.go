// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

var (
	// ErrArgument is returned for numeric input a helper cannot handle.
	ErrArgument = errors.New("invalid argument")
)
