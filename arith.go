package num

import (
	"github.com/shabbyrobe/go-numtext/internal/arith"
)

// appendLimbs appends 64-bit limbs, least significant first, to dst as
// machine words and returns the normalized result.
func appendLimbs(dst []arith.Word, limbs ...uint64) []arith.Word {
	for _, l := range limbs {
		switch intSize {
		case 64:
			dst = append(dst, arith.Word(l))
		case 32:
			dst = append(dst, arith.Word(uint32(l)), arith.Word(l>>32))
		default:
			panic("num: unsupported bit size")
		}
	}
	return arith.Norm(dst)
}

// fillLimbs ORs words into limbs, least significant first. It reports false
// if words holds more significant bits than limbs can store, in which case
// limbs is left partially filled.
func fillLimbs(limbs []uint64, words []arith.Word) (fits bool) {
	const per = 64 / intSize

	words = arith.Norm(words)
	for i, w := range words {
		li := i / per
		if li >= len(limbs) {
			return false
		}
		limbs[li] |= uint64(w) << (uint(i%per) * intSize)
	}
	return true
}
