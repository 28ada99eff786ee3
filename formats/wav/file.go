// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/convert"
	"github.com/ik5/audfmt/endian"
	"github.com/ik5/audfmt/riff"
	"github.com/ik5/audfmt/wave"
)

// File is a parsed WAVE file. The sample data is not loaded.
type File struct {
	Header *riff.Header
	Wave   *wave.Format
	// Format is zero when Wave has no attribute mapping (ADPCM, A-law, ...).
	Format audio.Format
	Data   riff.Chunk

	r *riff.Reader
}

// Read parses the RIFF, RIFX or RF64 WAVE file at the current position of rs.
func Read(rs io.ReadSeeker, opts ...riff.Option) (*File, error) {
	r := riff.NewReader(rs, opts...)

	h, err := r.ReadHeader()
	if err != nil {
		if errors.Is(err, riff.ErrBadSignature) {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		return nil, err
	}
	if h.Form != riff.WAVE || h.Signature == riff.FORM {
		return nil, fmt.Errorf("%w: %v form %v", ErrNotWavFile, h.Signature, h.Form)
	}

	fc, ok := h.Find(riff.Fmt)
	if !ok {
		return nil, ErrMissingFmtChunk
	}
	b, err := r.ReadChunk(fc)
	if err != nil {
		return nil, err
	}

	wf, err := wave.Parse(b, 0, h.Order)
	if err != nil {
		return nil, fmt.Errorf("fmt chunk: %w", err)
	}
	if wf.Tag() == wave.TagExtensible {
		if wf, err = wf.Extend(); err != nil {
			return nil, fmt.Errorf("fmt chunk: %w", err)
		}
	}

	data, ok := h.Find(riff.Data)
	if !ok {
		return nil, ErrMissingDataChunk
	}

	af, _ := convert.TryToAudio(wf)

	return &File{
		Header: h,
		Wave:   wf,
		Format: af,
		Data:   data,
		r:      r,
	}, nil
}

// PCM returns a reader over the sample data. It shares the stream passed to
// Read.
func (f *File) PCM() (io.Reader, error) {
	return f.r.ChunkReader(f.Data)
}

// Frames is the number of whole frames in the data chunk, as declared.
func (f *File) Frames() int64 {
	return f.Wave.BytesToFrames(f.Data.Size)
}

func (f *File) Duration() time.Duration {
	return f.Wave.FramesToDuration(f.Frames())
}

// Write writes a complete WAVE file holding pcm, which must be interleaved
// frames laid out as af describes. Big-endian formats are written as RIFX.
func Write(ws io.WriteSeeker, af audio.Format, pcm []byte, opts ...riff.Option) error {
	wf, err := convert.ToWave(af)
	if err != nil {
		return err
	}
	if fs := wf.FrameSize(); fs == 0 || len(pcm)%fs != 0 {
		return fmt.Errorf("%w: %d bytes in %d byte frames", ErrPartialFrame, len(pcm), fs)
	}

	return encode(ws, wf, int64(len(pcm)), func(dst io.Writer) error {
		_, err := dst.Write(pcm)
		return err
	}, opts)
}

// Encode is Write for sample data of unknown length. The data chunk size is
// patched once src is drained.
func Encode(ws io.WriteSeeker, af audio.Format, src io.Reader, opts ...riff.Option) error {
	wf, err := convert.ToWave(af)
	if err != nil {
		return err
	}

	return encode(ws, wf, -1, func(dst io.Writer) error {
		_, err := io.Copy(dst, src)
		return err
	}, opts)
}

func encode(ws io.WriteSeeker, wf *wave.Format, size int64, fn func(io.Writer) error, opts []riff.Option) error {
	sig := riff.RIFF
	if wf.Order() == endian.Big {
		sig = riff.RIFX
	}

	w, err := riff.NewWriter(ws, sig, riff.WAVE, opts...)
	if err != nil {
		return err
	}

	if _, err := w.WriteChunk(riff.Fmt, fmtPayload(wf)); err != nil {
		return err
	}

	var fact riff.Chunk
	if wf.Tag() != wave.TagPCM {
		// sample frame count, patched below
		if fact, err = w.WriteChunk(riff.Fact, make([]byte, 4)); err != nil {
			return err
		}
	}

	data, err := w.WriteChunkFunc(riff.Data, size, fn)
	if err != nil {
		return err
	}

	if fact.Size > 0 {
		b := make([]byte, 4)
		frames := min(wf.BytesToFrames(data.Size), 0xFFFFFFFF)
		_ = endian.PutU32(b, 0, wf.Order(), uint32(frames))
		if err := patch(ws, fact.DataStart, b); err != nil {
			return err
		}
	}

	return w.Close()
}

// fmtPayload drops cbSize from plain PCM, like most writers do.
func fmtPayload(wf *wave.Format) []byte {
	b := wf.Marshal()
	if wf.Tag() == wave.TagPCM && wf.ExtensionSize() == 0 {
		return b[:wave.HeaderSize]
	}
	return b
}

func patch(ws io.WriteSeeker, off int64, b []byte) error {
	end, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if _, err := ws.Seek(off, io.SeekStart); err != nil {
		return err
	}
	if _, err := ws.Write(b); err != nil {
		return err
	}
	_, err = ws.Seek(end, io.SeekStart)
	return err
}
