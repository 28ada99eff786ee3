// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"math"
	"testing"
)

func TestBitSize(t *testing.T) {
	t.Parallel()

	if got := BitSize[int8](); got != 8 {
		t.Errorf("BitSize[int8]() = %d, want 8", got)
	}
	if got := BitSize[uint16](); got != 16 {
		t.Errorf("BitSize[uint16]() = %d, want 16", got)
	}
	if got := BitSize[int32](); got != 32 {
		t.Errorf("BitSize[int32]() = %d, want 32", got)
	}
	if got := BitSize[uint64](); got != 64 {
		t.Errorf("BitSize[uint64]() = %d, want 64", got)
	}
}

func TestIsSigned(t *testing.T) {
	t.Parallel()

	if !IsSigned[int32]() {
		t.Error("IsSigned[int32]() = false, want true")
	}
	if IsSigned[uint32]() {
		t.Error("IsSigned[uint32]() = true, want false")
	}
}

func TestBitCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   uint32
		want int
	}{
		{"zero", 0, 0},
		{"one", 1, 1},
		{"5.1 mask", 0x3F, 6},
		{"7.1 mask", 0xFF, 8},
		{"all", math.MaxUint32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BitCount(tt.in); got != tt.want {
				t.Errorf("BitCount(%#x) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	if got := BitCount(int8(-1)); got != 8 {
		t.Errorf("BitCount(int8(-1)) = %d, want 8", got)
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{8, 3},
		{44100, 15},
		{math.MaxInt64, 62},
	}

	for _, tt := range tests {
		got, err := Log2(tt.in)
		if err != nil {
			t.Fatalf("Log2(%d) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Log2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := Log2(0); !errors.Is(err, ErrArgument) {
		t.Errorf("Log2(0) error = %v, want ErrArgument", err)
	}
	if _, err := Log2(-4); !errors.Is(err, ErrArgument) {
		t.Errorf("Log2(-4) error = %v, want ErrArgument", err)
	}
}

func TestPowerBase2_Limits(t *testing.T) {
	t.Parallel()

	v, err := PowerBase2[int32](30)
	if err != nil || v != 1<<30 {
		t.Errorf("PowerBase2[int32](30) = %d, %v", v, err)
	}
	if _, err := PowerBase2[int32](31); !errors.Is(err, ErrArgument) {
		t.Errorf("PowerBase2[int32](31) error = %v, want ErrArgument", err)
	}

	u, err := PowerBase2[uint32](31)
	if err != nil || u != 1<<31 {
		t.Errorf("PowerBase2[uint32](31) = %d, %v", u, err)
	}
	if _, err := PowerBase2[uint32](32); !errors.Is(err, ErrArgument) {
		t.Errorf("PowerBase2[uint32](32) error = %v, want ErrArgument", err)
	}

	if _, err := PowerBase2[int64](62); err != nil {
		t.Errorf("PowerBase2[int64](62) error = %v", err)
	}
	if _, err := PowerBase2[int64](63); !errors.Is(err, ErrArgument) {
		t.Errorf("PowerBase2[int64](63) error = %v, want ErrArgument", err)
	}
	if _, err := PowerBase2[uint64](-1); !errors.Is(err, ErrArgument) {
		t.Errorf("PowerBase2[uint64](-1) error = %v, want ErrArgument", err)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
	}{
		{0, 1},
		{1, 1},
		{3, 4},
		{4, 4},
		{1000, 1024},
		{4097, 8192},
	}

	for _, tt := range tests {
		got, err := NextPowerOfTwo(tt.in)
		if err != nil {
			t.Fatalf("NextPowerOfTwo(%d) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if _, err := NextPowerOfTwo(int32(math.MaxInt32)); !errors.Is(err, ErrArgument) {
		t.Errorf("NextPowerOfTwo(MaxInt32) error = %v, want ErrArgument", err)
	}
}
