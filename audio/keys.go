// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Key names an attribute of a Format. Global keys have no namespace,
// encoding specific keys are prefixed with the encoding name.
type Key string

const (
	KeyEndianness Key = "Endianness"
	KeyEncoding   Key = "Encoding"

	KeySampleRate Key = "Pcm.SampleRate"
	KeyDepth      Key = "Pcm.Depth"
	KeyChannels   Key = "Pcm.Channels"
	KeySpeakers   Key = "Pcm.Speakers"
	KeyDataType   Key = "Pcm.DataType"
	KeyPacking    Key = "Pcm.Packing"
)

// Encoding is the value of KeyEncoding.
type Encoding uint8

const (
	EncodingUnknown Encoding = iota
	EncodingPcm
	EncodingAdpcm
	EncodingALaw
	EncodingMuLaw
)

func (e Encoding) String() string {
	switch e {
	case EncodingUnknown:
		return "Unknown"
	case EncodingPcm:
		return "Pcm"
	case EncodingAdpcm:
		return "Adpcm"
	case EncodingALaw:
		return "ALaw"
	case EncodingMuLaw:
		return "MuLaw"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

// DataType is the value of KeyDataType.
type DataType uint8

const (
	// Int is two's complement integer samples (unsigned for 8 bit).
	Int DataType = iota
	// Ieee754 is IEEE 754 floating point samples.
	Ieee754
)

func (d DataType) String() string {
	switch d {
	case Int:
		return "Int"
	case Ieee754:
		return "Ieee754"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(d))
	}
}
