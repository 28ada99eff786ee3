// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"fmt"

	goriff "github.com/go-audio/riff"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/endian"
)

// ID is a four character chunk or form identifier.
type ID [4]byte

// Container signatures.
var (
	RIFF = ID(goriff.RiffID)
	RIFX = ID{'R', 'I', 'F', 'X'}
	RF64 = ID{'R', 'F', '6', '4'}
	FORM = ID{'F', 'O', 'R', 'M'}
)

// Form types and well known chunks.
var (
	WAVE = ID(goriff.WavFormatID)
	AIFF = ID{'A', 'I', 'F', 'F'}
	AIFC = ID{'A', 'I', 'F', 'C'}

	Fmt  = ID(goriff.FmtID)
	Data = ID(goriff.DataFormatID)
	Fact = ID{'f', 'a', 'c', 't'}
	List = ID{'L', 'I', 'S', 'T'}
	Junk = ID{'J', 'U', 'N', 'K'}
	DS64 = ID{'d', 's', '6', '4'}
	Comm = ID{'C', 'O', 'M', 'M'}
	Ssnd = ID{'S', 'S', 'N', 'D'}
)

// ParseID converts a four character string into an ID.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != len(id) {
		return id, fmt.Errorf("%w: chunk id %q is not four bytes", audio.ErrArgument, s)
	}
	copy(id[:], s)
	return id, nil
}

func (id ID) String() string {
	for _, c := range id {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("%#x", id[:])
		}
	}
	return string(id[:])
}

// signature describes how a container stores its sizes.
type signature struct {
	order endian.Order
	rf64  bool
}

func lookupSignature(id ID) (signature, bool) {
	switch id {
	case RIFF:
		return signature{order: endian.Little}, true
	case RF64:
		return signature{order: endian.Little, rf64: true}, true
	case RIFX, FORM:
		return signature{order: endian.Big}, true
	default:
		return signature{}, false
	}
}
