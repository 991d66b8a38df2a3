package radix

import "github.com/shabbyrobe/go-numtext/internal/arith"

const (
	MinBase = 2
	MaxBase = 10 + ('z' - 'a' + 1)

	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
	upperDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Case selects the letters used for digit values 10 through 35 when encoding.
type Case uint8

const (
	Lower Case = iota
	Upper
)

// Encode maps a digit value in [0, 36) to its ASCII character. Values out of
// range panic; they can only come from a broken caller.
func (c Case) Encode(d arith.Word) byte {
	if c == Upper {
		return upperDigits[d]
	}
	return lowerDigits[d]
}

// DecodeDigit maps an ASCII digit or letter to its value, ignoring case. It
// reports false if b is not a digit of the given base.
func DecodeDigit(b byte, base arith.Word) (d arith.Word, ok bool) {
	switch {
	case '0' <= b && b <= '9':
		d = arith.Word(b - '0')
	case 'a' <= b && b <= 'z':
		d = arith.Word(b-'a') + 10
	case 'A' <= b && b <= 'Z':
		d = arith.Word(b-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}
