// SPDX-License-Identifier: EPL-2.0

package audfmt

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/formats/aiff"
	"github.com/ik5/audfmt/formats/mp3"
	"github.com/ik5/audfmt/formats/vorbis"
	"github.com/ik5/audfmt/formats/wav"
)

// Registry keys of the built in probers.
const (
	FormatWAV  = "wav"
	FormatAIFF = "aiff"
	FormatMP3  = "mp3"
	FormatOgg  = "ogg"
)

const sniffSize = 12

var extensions = map[string]string{
	".wav":  FormatWAV,
	".wave": FormatWAV,
	".aif":  FormatAIFF,
	".aiff": FormatAIFF,
	".aifc": FormatAIFF,
	".mp3":  FormatMP3,
	".ogg":  FormatOgg,
	".oga":  FormatOgg,
}

// NewRegistry returns a registry holding every built in prober.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(FormatWAV, wav.Prober{})
	reg.Register(FormatAIFF, aiff.Prober{})
	reg.Register(FormatMP3, mp3.Prober{})
	reg.Register(FormatOgg, vorbis.Prober{})
	return reg
}

// FormatForPath maps a file extension to a registry key.
func FormatForPath(path string) (string, bool) {
	name, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return name, ok
}

// Detect sniffs the magic bytes at the current position of rs and returns the
// registry key of the matching format. rs is restored to where it was.
func Detect(rs io.ReadSeeker) (string, error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", err
	}

	b := make([]byte, sniffSize)
	n, err := io.ReadFull(rs, b)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return "", err
	}

	if name, ok := sniff(b[:n]); ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: % x", ErrUnknownFormat, b[:n])
}

func sniff(b []byte) (string, bool) {
	has := func(off int, magic string) bool {
		return len(b) >= off+len(magic) && bytes.Equal(b[off:off+len(magic)], []byte(magic))
	}

	switch {
	case (has(0, "RIFF") || has(0, "RIFX") || has(0, "RF64")) && has(8, "WAVE"):
		return FormatWAV, true
	case has(0, "FORM") && (has(8, "AIFF") || has(8, "AIFC")):
		return FormatAIFF, true
	case has(0, "OggS"):
		return FormatOgg, true
	case has(0, "ID3"):
		return FormatMP3, true
	case len(b) >= 2 && b[0] == 0xFF && b[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return FormatMP3, true
	}
	return "", false
}

// ReadFormat detects the format of rs with reg and probes it. A nil reg uses
// NewRegistry.
func ReadFormat(reg *audio.Registry, rs io.ReadSeeker) (string, audio.Format, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	name, err := Detect(rs)
	if err != nil {
		return "", audio.Format{}, err
	}

	af, err := reg.Probe(name, rs)
	if err != nil {
		return name, audio.Format{}, fmt.Errorf("probing %s: %w", name, err)
	}
	return name, af, nil
}
