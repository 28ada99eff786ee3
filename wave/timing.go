// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"time"

	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/packing"
	"github.com/ik5/audfmt/utils"
)

// FrameSize is the number of bytes of one sample frame across all channels.
func (f *Format) FrameSize() int { return int(f.BlockAlign) }

// Packing returns a calculator whose unit is one frame.
func (f *Format) Packing() (packing.Calculator[int64], error) {
	return packing.New(int64(f.BlockAlign), 1)
}

// BytesToFrames returns the number of whole frames in n bytes.
func (f *Format) BytesToFrames(n int64) int64 {
	if f.BlockAlign == 0 {
		return 0
	}
	return n / int64(f.BlockAlign)
}

// FramesToBytes returns the size of frames frames.
func (f *Format) FramesToBytes(frames int64) int64 {
	return frames * int64(f.BlockAlign)
}

// FramesToDuration returns the play time of frames frames.
func (f *Format) FramesToDuration(frames int64) time.Duration {
	rate := int64(f.SamplesPerSec)
	if rate == 0 {
		return 0
	}
	sec, rem := frames/rate, frames%rate
	return time.Duration(sec)*time.Second + time.Duration(rem)*time.Second/time.Duration(rate)
}

// DurationToFrames returns the number of whole frames played in d.
func (f *Format) DurationToFrames(d time.Duration) int64 {
	rate := int64(f.SamplesPerSec)
	sec, rem := int64(d/time.Second), int64(d%time.Second)
	return sec*rate + rem*rate/int64(time.Second)
}

// BytesToDuration returns the play time of n bytes. Partial frames are
// ignored.
func (f *Format) BytesToDuration(n int64) time.Duration {
	return f.FramesToDuration(f.BytesToFrames(n))
}

// DurationToBytes returns the frame aligned byte count played in d.
func (f *Format) DurationToBytes(d time.Duration) int64 {
	return f.FramesToBytes(f.DurationToFrames(d))
}

// LatencyBuffer sizes a streaming buffer that holds at least latency worth of
// frames. The frame count is rounded up to a power of two and, when limit is
// positive, capped so the buffer fits in limit bytes.
func (f *Format) LatencyBuffer(latency time.Duration, limit int64) (packing.Calculator[int64], error) {
	if latency <= 0 {
		return packing.Calculator[int64]{}, fmt.Errorf("%w: latency %v", audio.ErrArgument, latency)
	}

	frames := f.DurationToFrames(latency)
	if f.FramesToDuration(frames) < latency {
		frames++
	}

	frames, err := utils.NextPowerOfTwo(frames)
	if err != nil {
		return packing.Calculator[int64]{}, fmt.Errorf("latency buffer: %w", err)
	}

	buf, err := packing.New(int64(f.BlockAlign), frames)
	if err != nil {
		return packing.Calculator[int64]{}, fmt.Errorf("latency buffer: %w", err)
	}
	if limit > 0 && buf.PackageSize() > limit {
		return buf.AlignToBufferSize(limit)
	}
	return buf, nil
}
