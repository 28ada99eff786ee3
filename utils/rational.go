// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

func abs[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. GCD(0, 0) is 0.
func GCD[T Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM[T Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	g := GCD(a, b)
	return MulChecked(abs(a)/g, abs(b))
}

// MulChecked multiplies a and b and reports overflow instead of wrapping.
func MulChecked[T Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	if IsSigned[T]() {
		var zero T
		minVal := T(1) << (BitSize[T]() - 1)
		if (a == zero-1 && b == minVal) || (b == zero-1 && a == minVal) {
			return 0, errOverflow(a, b)
		}
	}

	p := a * b
	if p/b != a {
		return 0, errOverflow(a, b)
	}
	return p, nil
}

// SmallestFactor returns the smallest k >= 1 such that (a*k) mod b == 0.
// It walks k linearly; GCD gives the same answer as b / GCD(a, b).
func SmallestFactor[T Integer](a, b T) (T, error) {
	if b <= 0 {
		return 0, fmt.Errorf("%w: modulus %d", ErrArgument, b)
	}

	for k := T(1); k <= b; k++ {
		p, err := MulChecked(a, k)
		if err != nil {
			return 0, err
		}
		if p%b == 0 {
			return k, nil
		}
	}

	// unreachable: k == b always satisfies the condition
	return b, nil
}

func errOverflow[T Integer](a, b T) error {
	return fmt.Errorf("%w: %d * %d overflows", ErrArgument, a, b)
}
