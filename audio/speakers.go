// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"

	"github.com/ik5/audfmt/utils"
)

// Speakers is a channel position mask, bit compatible with the
// WAVEFORMATEXTENSIBLE dwChannelMask field.
type Speakers uint32

const (
	SpeakerFrontLeft Speakers = 1 << iota
	SpeakerFrontRight
	SpeakerFrontCenter
	SpeakerLowFrequency
	SpeakerBackLeft
	SpeakerBackRight
	SpeakerFrontLeftOfCenter
	SpeakerFrontRightOfCenter
	SpeakerBackCenter
	SpeakerSideLeft
	SpeakerSideRight
	SpeakerTopCenter
	SpeakerTopFrontLeft
	SpeakerTopFrontCenter
	SpeakerTopFrontRight
	SpeakerTopBackLeft
	SpeakerTopBackCenter
	SpeakerTopBackRight
)

// Common layouts.
const (
	Mono                = SpeakerFrontCenter
	Stereo              = SpeakerFrontLeft | SpeakerFrontRight
	Quad                = Stereo | SpeakerBackLeft | SpeakerBackRight
	Surround            = Stereo | SpeakerFrontCenter | SpeakerBackCenter
	Surround5Point1     = Stereo | SpeakerFrontCenter | SpeakerLowFrequency | SpeakerBackLeft | SpeakerBackRight
	Surround5Point1Side = Stereo | SpeakerFrontCenter | SpeakerLowFrequency | SpeakerSideLeft | SpeakerSideRight
	Surround7Point1     = Surround5Point1 | SpeakerFrontLeftOfCenter | SpeakerFrontRightOfCenter
	Surround7Point1Side = Surround5Point1 | SpeakerSideLeft | SpeakerSideRight
)

// SpeakerAll is the reserved "any position" mask.
const SpeakerAll Speakers = 0x80000000

var layoutNames = map[Speakers]string{
	Mono:                "Mono",
	Stereo:              "Stereo",
	Quad:                "Quad",
	Surround:            "Surround",
	Surround5Point1:     "Surround5Point1",
	Surround5Point1Side: "Surround5Point1Side",
	Surround7Point1:     "Surround7Point1",
	Surround7Point1Side: "Surround7Point1Side",
}

var positionNames = []string{
	"FL", "FR", "FC", "LFE", "BL", "BR", "FLC", "FRC", "BC",
	"SL", "SR", "TC", "TFL", "TFC", "TFR", "TBL", "TBC", "TBR",
}

// SpeakerAt returns the single position mask for bit index i.
func SpeakerAt(i int) (Speakers, error) {
	v, err := utils.PowerBase2[uint32](i)
	if err != nil {
		return 0, fmt.Errorf("speaker index: %w", err)
	}
	return Speakers(v), nil
}

// Count returns the number of positions in the mask.
func (s Speakers) Count() int {
	return utils.BitCount(uint32(s))
}

// Positions splits the mask into its single-bit positions, lowest first.
func (s Speakers) Positions() []Speakers {
	out := make([]Speakers, 0, s.Count())
	for m := uint32(s); m != 0; m &= m - 1 {
		out = append(out, Speakers(m&-m))
	}
	return out
}

func (s Speakers) String() string {
	if name, ok := layoutNames[s]; ok {
		return name
	}
	if s == 0 {
		return "None"
	}

	parts := make([]string, 0, s.Count())
	for _, p := range s.Positions() {
		idx, _ := utils.Log2(uint32(p))
		if idx < len(positionNames) {
			parts = append(parts, positionNames[idx])
		} else {
			parts = append(parts, fmt.Sprintf("bit%d", idx))
		}
	}
	return strings.Join(parts, "|")
}
