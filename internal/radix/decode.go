package radix

import (
	"math/bits"

	"github.com/shabbyrobe/go-numtext/internal/arith"
)

// Decode parses text into a sign and a normalized magnitude. If radix is 0
// the base is taken from an optional literal marker as described by
// ParsePrefix; the base actually used is returned.
//
// ok is false if the digit body is empty or contains anything that is not a
// digit of the base. No partial result is returned in that case.
func Decode(text []byte, radix int) (sign Sign, mag []arith.Word, base int, ok bool) {
	sign, base, body := ParsePrefix(text, radix)
	mag, ok = DecodeBody(body, ForRadix(base))
	if !ok {
		return Plus, nil, base, false
	}
	return sign, mag, base, true
}

// DecodeBody converts a bare digit body into a normalized magnitude. Zero is
// returned as an empty, non-nil slice.
func DecodeBody(body []byte, s Solution) (mag []arith.Word, ok bool) {
	if len(body) == 0 {
		return nil, false
	}
	body = trimZeros(body)

	if s.Perfect() {
		return decodePerfect(body, s)
	}
	return decodeImperfect(body, s)
}

func trimZeros(body []byte) []byte {
	i := 0
	for i < len(body) && body[i] == '0' {
		i++
	}
	return body[i:]
}

// decodePerfect fills one word per Exponent digits, starting from the least
// significant end of body. Each digit occupies exactly s.Shift() bits.
func decodePerfect(body []byte, s Solution) ([]arith.Word, bool) {
	shift := s.Shift()
	n := len(body)
	mag := make([]arith.Word, (n+s.Exponent-1)/s.Exponent)

	hi := n
	for i := range mag {
		lo := hi - s.Exponent
		if lo < 0 {
			lo = 0
		}
		var w arith.Word
		for _, b := range body[lo:hi] {
			d, ok := DecodeDigit(b, s.Base)
			if !ok {
				return nil, false
			}
			w = w<<shift | d
		}
		mag[i] = w
		hi = lo
	}
	return mag, true
}

// decodeImperfect runs Horner's rule one chunk at a time, most significant
// chunk first: mag = mag*Power + chunk. The leading chunk holds the
// n%Exponent digits left over so that every following chunk is full; at that
// point mag is still zero, so multiplying it by Power instead of a smaller
// power of the base changes nothing.
func decodeImperfect(body []byte, s Solution) ([]arith.Word, bool) {
	n := len(body)
	mag := make([]arith.Word, 0, decodeCap(n, s.Base))

	size := n % s.Exponent
	if size == 0 {
		size = s.Exponent
	}
	for start := 0; start < n; start, size = start+size, s.Exponent {
		var chunk arith.Word
		for _, b := range body[start : start+size] {
			d, ok := DecodeDigit(b, s.Base)
			if !ok {
				return nil, false
			}
			chunk = chunk*s.Base + d
		}

		if c := arith.MulAddVWW(mag, mag, s.Power, chunk); c != 0 {
			mag = append(mag, c)
		}
	}
	return mag, true
}

// decodeCap bounds the number of words needed for digits digits of base. The
// bit length of base is never less than log2(base), so the bound is never
// short.
func decodeCap(digits int, base arith.Word) int {
	return (digits*bits.Len(uint(base)) + arith.W - 1) / arith.W
}
