// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"

	"github.com/google/uuid"
)

// Tag is the wFormatTag field.
type Tag uint16

const (
	TagUnknown    Tag = 0x0000
	TagPCM        Tag = 0x0001
	TagADPCM      Tag = 0x0002
	TagIEEEFloat  Tag = 0x0003
	TagALaw       Tag = 0x0006
	TagMuLaw      Tag = 0x0007
	TagExtensible Tag = 0xFFFE
)

func (t Tag) String() string {
	switch t {
	case TagUnknown:
		return "Unknown"
	case TagPCM:
		return "PCM"
	case TagADPCM:
		return "ADPCM"
	case TagIEEEFloat:
		return "IEEEFloat"
	case TagALaw:
		return "ALaw"
	case TagMuLaw:
		return "MuLaw"
	case TagExtensible:
		return "Extensible"
	default:
		return fmt.Sprintf("Tag(0x%04X)", uint16(t))
	}
}

// Sub-format GUIDs of the two uncompressed encodings.
var (
	SubTypePCM       = SubTypeFor(TagPCM)
	SubTypeIEEEFloat = SubTypeFor(TagIEEEFloat)
)

// KSDATAFORMAT_SUBTYPE_* GUIDs are the format tag followed by a fixed tail.
var subTypeTail = [12]byte{0x00, 0x00, 0x00, 0x10, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

// SubTypeFor returns the sub-format GUID that stands for a legacy format tag.
func SubTypeFor(t Tag) uuid.UUID {
	var g uuid.UUID
	g[2], g[3] = byte(t>>8), byte(t)
	copy(g[4:], subTypeTail[:])
	return g
}

// TagOf returns the legacy format tag a sub-format GUID stands for.
func TagOf(g uuid.UUID) (Tag, bool) {
	if g[0] != 0 || g[1] != 0 || [12]byte(g[4:]) != subTypeTail {
		return TagUnknown, false
	}
	return Tag(uint16(g[2])<<8 | uint16(g[3])), true
}
