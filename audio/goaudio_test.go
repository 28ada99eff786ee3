// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audfmt/endian"
)

func TestPCMFormat(t *testing.T) {
	t.Parallel()

	pf, err := NewPCM(endian.Little, Int, 44100, 16, 2).PCMFormat()
	if err != nil {
		t.Fatalf("PCMFormat() error = %v", err)
	}
	if *pf != *goaudio.FormatStereo44100 {
		t.Errorf("PCMFormat() = %+v, want %+v", *pf, *goaudio.FormatStereo44100)
	}

	if _, err := New(Attribute{KeySampleRate, 8000}).PCMFormat(); !errors.Is(err, ErrArgument) {
		t.Errorf("PCMFormat() without channels error = %v, want ErrArgument", err)
	}
}

func TestFromPCMFormat(t *testing.T) {
	t.Parallel()

	f, err := FromPCMFormat(goaudio.FormatMono48000, endian.Big, Int, 24)
	if err != nil {
		t.Fatalf("FromPCMFormat() error = %v", err)
	}

	want := NewPCM(endian.Big, Int, 48000, 24, 1)
	if !f.Equal(want) {
		t.Errorf("FromPCMFormat() = %v, want %v", f, want)
	}

	if _, err := FromPCMFormat(nil, endian.Little, Int, 16); !errors.Is(err, ErrArgument) {
		t.Errorf("FromPCMFormat(nil) error = %v, want ErrArgument", err)
	}
	if _, err := FromPCMFormat(goaudio.FormatMono48000, endian.Little, Int, 0); !errors.Is(err, ErrArgument) {
		t.Errorf("FromPCMFormat(depth 0) error = %v, want ErrArgument", err)
	}
}
