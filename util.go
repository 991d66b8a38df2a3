package num

import (
	"github.com/shabbyrobe/go-numtext/internal/arith"
)

type RandSource interface {
	Uint64() uint64
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

// RandInt generates a non-negative Int of at most bits bits from an external
// source.
func RandInt(source RandSource, bits int) Int {
	if bits <= 0 {
		return Int{}
	}
	limbs := make([]uint64, (bits+63)/64)
	for i := range limbs {
		limbs[i] = source.Uint64()
	}
	if rem := bits % 64; rem != 0 {
		limbs[len(limbs)-1] &= 1<<uint(rem) - 1
	}
	return Int{abs: appendLimbs(make([]arith.Word, 0, len(limbs)*64/intSize), limbs...)}
}
