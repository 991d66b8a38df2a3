// Package arith provides the word-level primitives that multi-word integer
// code is built on. A magnitude is a []Word, least-significant word first.
// Normalized magnitudes carry no most-significant zero words; zero is the
// empty slice.
package arith

import (
	"math/big"
	"math/bits"
)

// Word is a single digit of a multi-precision unsigned integer. It is the
// same type math/big uses, so magnitudes can be shared with big.Int.Bits and
// big.Int.SetBits without copying.
type Word = big.Word

const (
	W = bits.UintSize // word size in bits
	M = 1<<W - 1      // largest word value
)

// MulAddWWW returns the double-width result of x*y + c as (hi, lo).
func MulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	var cc uint
	l, cc = bits.Add(l, uint(c), 0)
	return Word(h + cc), Word(l)
}

// DivWW returns the quotient and remainder of (hi, lo) / y. The quotient must
// fit in a single word, which means hi < y; the call panics otherwise.
func DivWW(hi, lo, y Word) (q, r Word) {
	qu, ru := bits.Div(uint(hi), uint(lo), uint(y))
	return Word(qu), Word(ru)
}

// MulAddVWW sets z = x*y + r and returns the carry out of the most
// significant word. len(z) must equal len(x); z may alias x.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return c
}

// DivWVW sets z = (xn:x) / y and returns the remainder. xn must be less than
// y. len(z) must equal len(x); z may alias x.
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = DivWW(r, x[i], y)
	}
	return r
}

// Norm drops the most significant zero words of x.
func Norm(x []Word) []Word {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// IsZero reports whether every word of x is zero.
func IsZero(x []Word) bool {
	return len(Norm(x)) == 0
}

// Cmp compares two magnitudes, which need not be normalized, and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func Cmp(x, y []Word) (r int) {
	x, y = Norm(x), Norm(y)
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}
	switch {
	case m == 0:
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return r
}

// BitLen returns the number of significant bits in x.
func BitLen(x []Word) int {
	x = Norm(x)
	if len(x) == 0 {
		return 0
	}
	i := len(x) - 1
	return i*W + bits.Len(uint(x[i]))
}
