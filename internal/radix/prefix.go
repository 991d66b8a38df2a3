package radix

// Sign is the sign carried alongside a magnitude.
type Sign uint8

const (
	Plus Sign = iota
	Minus
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// Char returns the byte written for s, or 0 when s is Plus and forcePlus
// is false.
func (s Sign) Char(forcePlus bool) byte {
	switch {
	case s == Minus:
		return '-'
	case forcePlus:
		return '+'
	}
	return 0
}

// ParsePrefix splits text into a sign, the radix to decode with, and the
// digit body that remains.
//
// A single leading '+' or '-' is consumed. When radix is 0, a case-insensitive
// "0x", "0o" or "0b" marker selects 16, 8 or 2, and anything else selects 10.
// When radix is non-zero the marker is not recognised, so "0x" in base 36 is
// the two digits '0' and 'x'. ParsePrefix never fails; an empty body is left
// for the decoder to reject.
func ParsePrefix(text []byte, radix int) (sign Sign, base int, body []byte) {
	body = text
	if len(body) > 0 {
		switch body[0] {
		case '-':
			sign, body = Minus, body[1:]
		case '+':
			body = body[1:]
		}
	}

	if radix != 0 {
		checkRadix(radix)
		return sign, radix, body
	}

	base = 10
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			body = body[2:]
		}
	}
	return sign, base, body
}
