// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Option configures a Reader or a Writer.
type Option func(*options)

type options struct {
	log     logrus.FieldLogger
	reserve int
	limit   int64
}

func newOptions(opts []Option) options {
	o := options{
		log:     logrus.StandardLogger(),
		reserve: -1,
		limit:   math.MaxUint32,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for chunk tracing at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithDS64Reserve makes a RIFF Writer reserve a JUNK chunk large enough for a
// ds64 chunk with the given number of extra table entries. On Close the
// container is promoted to RF64 when any size does not fit 32 bits.
func WithDS64Reserve(entries int) Option {
	return func(o *options) {
		o.reserve = max(entries, 0)
	}
}

// WithSizeLimit lowers the largest size a Writer stores in a 32 bit field.
// Larger sizes go through ds64.
func WithSizeLimit(limit int64) Option {
	return func(o *options) {
		if limit > 0 && limit <= math.MaxUint32 {
			o.limit = limit
		}
	}
}
