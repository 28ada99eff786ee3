// SPDX-License-Identifier: EPL-2.0

// Package packing computes aligned and padded sizes for fixed-size units
// grouped into packages.
//
// A Calculator describes "pack items into whole multiples of PackageSize",
// where PackageSize = UnitSize * UnitCount. Typical units are audio frames
// (block align bytes) or container padding words:
//
//	frames, _ := packing.New[int64](4, 1) // 16-bit stereo
//	buf, _ := frames.AlignToBufferSize(4410)
//	buf.PackageSize() // 4408
//
// Calculators are immutable; the Align* methods return new values.
package packing

import (
	"fmt"

	"github.com/ik5/audfmt/utils"
)

// Calculator is an immutable (UnitSize, UnitCount) pair.
type Calculator[T utils.Integer] struct {
	unitSize    T
	unitCount   T
	packageSize T
}

// New returns a calculator for unitCount units of unitSize bytes each.
func New[T utils.Integer](unitSize, unitCount T) (Calculator[T], error) {
	if unitSize <= 0 {
		return Calculator[T]{}, fmt.Errorf("%w: unit size %d", utils.ErrArgument, unitSize)
	}
	if unitCount <= 0 {
		return Calculator[T]{}, fmt.Errorf("%w: unit count %d", utils.ErrArgument, unitCount)
	}

	size, err := utils.MulChecked(unitSize, unitCount)
	if err != nil {
		return Calculator[T]{}, fmt.Errorf("package size: %w", err)
	}

	return Calculator[T]{
		unitSize:    unitSize,
		unitCount:   unitCount,
		packageSize: size,
	}, nil
}

// Must is like New but panics on invalid input. It is meant for constants.
func Must[T utils.Integer](c Calculator[T], err error) Calculator[T] {
	if err != nil {
		panic(err)
	}
	return c
}

func (c Calculator[T]) UnitSize() T    { return c.unitSize }
func (c Calculator[T]) UnitCount() T   { return c.unitCount }
func (c Calculator[T]) PackageSize() T { return c.packageSize }

// IsZero reports whether c is the zero value (not built through New).
func (c Calculator[T]) IsZero() bool { return c.packageSize == 0 }

func (c Calculator[T]) String() string {
	return fmt.Sprintf("%d x %d = %d", c.unitSize, c.unitCount, c.packageSize)
}

// GetOverflowAmount returns how far n reaches past the last whole package.
func (c Calculator[T]) GetOverflowAmount(n T) T {
	return n % c.packageSize
}

// GetUnderflowAmount returns how many bytes are missing to complete the
// package n ends in, or 0 when n is already aligned.
func (c Calculator[T]) GetUnderflowAmount(n T) T {
	overflow := c.GetOverflowAmount(n)
	if overflow == 0 {
		return 0
	}
	return c.packageSize - overflow
}

// GetWholePackageCount returns the number of complete packages in n.
func (c Calculator[T]) GetWholePackageCount(n T) T {
	return n / c.packageSize
}

// RoundUp returns the nearest multiple of PackageSize that is >= n.
func (c Calculator[T]) RoundUp(n T) T {
	return n + c.GetUnderflowAmount(n)
}

// RoundDown returns the nearest multiple of PackageSize that is <= n.
func (c Calculator[T]) RoundDown(n T) T {
	return n - c.GetOverflowAmount(n)
}

// IsAligned reports whether n is a whole number of packages.
func (c Calculator[T]) IsAligned(n T) bool {
	return c.GetOverflowAmount(n) == 0
}

// AlignToEnvelope returns the calculator whose package is the smallest
// multiple of c's package that is also a multiple of envelope.
func (c Calculator[T]) AlignToEnvelope(envelope T) (Calculator[T], error) {
	if envelope <= 0 {
		return Calculator[T]{}, fmt.Errorf("%w: envelope %d", utils.ErrArgument, envelope)
	}

	factor := envelope / utils.GCD(c.packageSize, envelope)
	count, err := utils.MulChecked(c.unitCount, factor)
	if err != nil {
		return Calculator[T]{}, fmt.Errorf("align to envelope %d: %w", envelope, err)
	}
	return New(c.unitSize, count)
}

// AlignToLeastCommonMultiple returns the calculator whose package size is
// lcm(PackageSize, other). UnitSize is kept.
func (c Calculator[T]) AlignToLeastCommonMultiple(other T) (Calculator[T], error) {
	if other <= 0 {
		return Calculator[T]{}, fmt.Errorf("%w: package size %d", utils.ErrArgument, other)
	}

	lcm, err := utils.LCM(c.packageSize, other)
	if err != nil {
		return Calculator[T]{}, fmt.Errorf("align to lcm with %d: %w", other, err)
	}
	return New(c.unitSize, lcm/c.unitSize)
}

// AlignToUnit collapses the package to a single unit.
func (c Calculator[T]) AlignToUnit() Calculator[T] {
	return Calculator[T]{
		unitSize:    c.unitSize,
		unitCount:   1,
		packageSize: c.unitSize,
	}
}

// AlignToBufferSize returns the calculator with the largest unit count whose
// package still fits in bufferSize.
func (c Calculator[T]) AlignToBufferSize(bufferSize T) (Calculator[T], error) {
	if bufferSize <= 0 {
		return Calculator[T]{}, fmt.Errorf("%w: buffer size %d", utils.ErrArgument, bufferSize)
	}
	if bufferSize < c.unitSize {
		return Calculator[T]{}, fmt.Errorf("%w: buffer size %d below unit size %d",
			utils.ErrArgument, bufferSize, c.unitSize)
	}
	return New(c.unitSize, bufferSize/c.unitSize)
}
