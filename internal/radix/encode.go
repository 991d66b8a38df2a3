package radix

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/shabbyrobe/go-numtext/internal/arith"
)

// Encode renders mag in the radix described by s and returns
// prefix + digits + suffix in a single buffer allocated at its final size.
//
// mag is consumed: the Imperfect path divides it in place, so callers that
// still need the value must pass a copy. A zero or empty magnitude encodes as
// a single "0".
func Encode(mag []arith.Word, s Solution, c Case, prefix, suffix []byte) []byte {
	var chunks []arith.Word
	if s.Perfect() {
		chunks = arith.Norm(mag)
	} else {
		chunks = divideChunks(mag, s)
	}
	if len(chunks) == 0 {
		chunks = []arith.Word{0}
	}

	last := len(chunks) - 1
	first := chunks[last]
	firstLen := chunkDigits(first, s)

	size := len(prefix) + firstLen + last*s.Exponent + len(suffix)
	buf := make([]byte, size)

	i := size - copy(buf[size-len(suffix):], suffix)
	for _, w := range chunks[:last] {
		i = writeChunk(buf, i, w, s.Exponent, s, c)
	}
	i = writeChunk(buf, i, first, firstLen, s, c)

	if i != len(prefix) {
		panic(fmt.Errorf("radix: encode buffer mismatch: %d != %d", i, len(prefix)))
	}
	copy(buf, prefix)
	return buf
}

// AppendText appends the text of the signed value (sign, mag) in the given
// radix to dst. mag is not modified.
func AppendText(dst []byte, sign Sign, mag []arith.Word, radix int, c Case) []byte {
	s := ForRadix(radix)
	work := mag
	if !s.Perfect() {
		work = append([]arith.Word(nil), mag...)
	}

	var prefix []byte
	if sign == Minus && !arith.IsZero(mag) {
		prefix = []byte{sign.Char(false)}
	}
	return append(dst, Encode(work, s, c, prefix, nil)...)
}

// divideChunks repeatedly divides mag by s.Power and collects the
// remainders, least significant first. Each remainder is one chunk of
// s.Exponent digits.
func divideChunks(mag []arith.Word, s Solution) []arith.Word {
	mag = arith.Norm(mag)
	if len(mag) == 0 {
		return nil
	}

	chunks := make([]arith.Word, 0, encodeCap(len(mag), s))
	for len(mag) > 0 {
		r := arith.DivWVW(mag, 0, mag, s.Power)
		if r >= s.Power {
			panic(fmt.Errorf("radix: chunk %d not below power %d", r, s.Power))
		}
		chunks = append(chunks, r)
		mag = arith.Norm(mag)
	}
	return chunks
}

// encodeCap is a capacity hint for the chunk slice built from words words.
// Each chunk carries Exponent*log2(Base) bits, so the chunk count is the
// magnitude's bit length over that; the extra chunk absorbs float rounding.
// append still grows the slice if the hint falls short.
func encodeCap(words int, s Solution) int {
	chunkBits := float64(s.Exponent) * math.Log2(float64(s.Base))
	return int(float64(words*arith.W)/chunkBits) + 1
}

// chunkDigits counts the digits of w with no leading zeros. Zero has one
// digit.
func chunkDigits(w arith.Word, s Solution) int {
	if shift := s.Shift(); shift != 0 {
		n := (bits.Len(uint(w)) + int(shift) - 1) / int(shift)
		if n == 0 {
			n = 1
		}
		return n
	}

	n := 1
	for w >= s.Base {
		w /= s.Base
		n++
	}
	return n
}

// writeChunk writes exactly n digits of w into buf, ending just before
// index i, and returns the index of the first digit written.
func writeChunk(buf []byte, i int, w arith.Word, n int, s Solution, c Case) int {
	if shift := s.Shift(); shift != 0 {
		mask := s.Base - 1
		for ; n > 0; n-- {
			i--
			buf[i] = c.Encode(w & mask)
			w >>= shift
		}
		return i
	}

	for ; n > 0; n-- {
		i--
		buf[i] = c.Encode(w % s.Base)
		w /= s.Base
	}
	return i
}
