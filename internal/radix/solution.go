package radix

import (
	"fmt"
	"math/bits"

	"github.com/shabbyrobe/go-numtext/internal/arith"
)

// Solution describes how a radix packs into a word of a given width.
//
// Exponent is the number of digits that fit losslessly into one word. For an
// Imperfect radix, Power is Base**Exponent, the multiplier used to fold one
// chunk of digits into a magnitude. For a Perfect radix, Exponent digits fill
// the word exactly, Base**Exponent would wrap to zero, and Power is left at 0
// to mark the bitwise path.
type Solution struct {
	Base     arith.Word
	Exponent int
	Power    arith.Word
}

// Perfect reports whether the digits of s.Base map onto word bits exactly.
func (s Solution) Perfect() bool { return s.Power == 0 }

// Shift is the number of bits per digit of a Perfect radix. It is 0 for an
// Imperfect one.
func (s Solution) Shift() uint {
	if !s.Perfect() {
		return 0
	}
	return uint(bits.TrailingZeros(uint(s.Base)))
}

func (s Solution) String() string {
	if s.Perfect() {
		return fmt.Sprintf("perfect(base=%d, exp=%d)", s.Base, s.Exponent)
	}
	return fmt.Sprintf("imperfect(base=%d, exp=%d, power=%d)", s.Base, s.Exponent, s.Power)
}

// ForRadix returns the Solution for radix on this platform's word size.
func ForRadix(radix int) Solution {
	return Solve(radix, arith.W)
}

// Solve classifies radix for words of wordBits bits. wordBits may be smaller
// than arith.W so 32-bit solutions can be computed on a 64-bit host.
//
// Solve panics if radix is outside [MinBase, MaxBase] or wordBits is outside
// [8, arith.W]; both indicate a programming error rather than bad input.
func Solve(radix int, wordBits int) Solution {
	checkRadix(radix)
	if wordBits < 8 || wordBits > arith.W {
		panic(fmt.Errorf("radix: word width %d out of range", wordBits))
	}

	base := arith.Word(radix)
	if base&(base-1) == 0 {
		shift := bits.TrailingZeros(uint(base))
		if wordBits%shift == 0 {
			return Solution{Base: base, Exponent: wordBits / shift}
		}
	}

	// Largest power of base that does not overflow the word: the loop stops
	// before multiplying past max, so power*base always fits.
	max := arith.Word(1)<<uint(wordBits-1) - 1 + arith.Word(1)<<uint(wordBits-1)
	power, exp := base, 1
	for limit := max / base; power <= limit; exp++ {
		power *= base
	}
	return Solution{Base: base, Exponent: exp, Power: power}
}

func checkRadix(radix int) {
	if radix < MinBase || radix > MaxBase {
		panic(fmt.Errorf("radix: base %d out of range [%d, %d]", radix, MinBase, MaxBase))
	}
}
