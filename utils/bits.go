// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

// Integer is satisfied by every signed and unsigned fixed width integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	n := 0
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// BitCount returns the number of set bits in v. For signed types the two's
// complement representation is counted.
func BitCount[T Integer](v T) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// Log2 returns floor(log2(v)). v must be positive.
func Log2[T Integer](v T) (int, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: log2 of %d", ErrArgument, v)
	}

	n := -1
	for v != 0 {
		v >>= 1
		n++
	}
	return n, nil
}

// PowerBase2 returns 2^exp as a T. The result must be representable without
// touching the sign bit, so the largest exponent is 30 for int32 and 31 for
// uint32.
func PowerBase2[T Integer](exp int) (T, error) {
	limit := BitSize[T]() - 1
	if IsSigned[T]() {
		limit--
	}

	if exp < 0 || exp > limit {
		return 0, fmt.Errorf("%w: exponent %d outside [0, %d]", ErrArgument, exp, limit)
	}
	return T(1) << exp, nil
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo[T Integer](v T) bool {
	return v > 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two that is >= v.
func NextPowerOfTwo[T Integer](v T) (T, error) {
	if v <= 1 {
		return 1, nil
	}
	if IsPowerOfTwo(v) {
		return v, nil
	}

	exp, err := Log2(v)
	if err != nil {
		return 0, err
	}
	return PowerBase2[T](exp + 1)
}
