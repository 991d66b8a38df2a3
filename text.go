package num

import (
	"fmt"
	"io"

	"github.com/shabbyrobe/go-numtext/internal/arith"
	"github.com/shabbyrobe/go-numtext/internal/radix"
)

const (
	// MinBase and MaxBase bound the radix accepted by the FromText
	// constructors and the Text methods. Passing a radix outside this range
	// panics.
	MinBase = radix.MinBase
	MaxBase = radix.MaxBase
)

// parseText decodes s with the given base (0 means "read the literal
// marker, default 10"), reporting failures as syntax errors for kind.
func parseText(kind string, s string, base int) (sign radix.Sign, mag []arith.Word, err error) {
	sign, mag, _, ok := radix.Decode([]byte(s), base)
	if !ok {
		return radix.Plus, nil, syntaxError(kind, s)
	}
	return sign, mag, nil
}

// parseJSON strips the optional quotes around a JSON number and decodes it.
func parseJSON(kind string, bts []byte) (sign radix.Sign, mag []arith.Word, err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return radix.Plus, nil, Error.New("%s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return parseText(kind, string(bts), 10)
}

func formatText(sign radix.Sign, mag []arith.Word, base int) string {
	return string(radix.AppendText(nil, sign, mag, base, radix.Lower))
}

func verbRadix(ch rune) (base int, c radix.Case, ok bool) {
	switch ch {
	case 'b':
		return 2, radix.Lower, true
	case 'o', 'O':
		return 8, radix.Lower, true
	case 'd', 's', 'v':
		return 10, radix.Lower, true
	case 'x':
		return 16, radix.Lower, true
	case 'X':
		return 16, radix.Upper, true
	}
	return 0, radix.Lower, false
}

// formatState implements fmt.Formatter for every integer type in this
// package. It supports the same verbs and flags as big.Int:
//
//	'b', 'o', 'O', 'd', 'x', 'X', 's', 'v'
//	'+' and ' ' for sign control, '#' for a radix marker, '-' and '0' for
//	justification, plus width and precision.
//
// The sign and marker are handed to the encoder as a prefix, so when no
// padding is requested the whole number is written from a single buffer.
func formatState(s fmt.State, ch rune, kind string, sign radix.Sign, mag []arith.Word) {
	base, c, ok := verbRadix(ch)
	if !ok {
		fmt.Fprintf(s, "%%!%c(%s=%s)", ch, kind, formatText(sign, mag, 10))
		return
	}

	if arith.IsZero(mag) {
		sign = radix.Plus
	}

	var head []byte
	if b := sign.Char(s.Flag('+')); b != 0 {
		head = append(head, b)
	} else if s.Flag(' ') {
		head = append(head, ' ')
	}

	switch {
	case ch == 'O':
		head = append(head, '0', 'o')
	case !s.Flag('#'):
	case ch == 'b':
		head = append(head, '0', 'b')
	case ch == 'o':
		head = append(head, '0')
	case ch == 'x':
		head = append(head, '0', 'x')
	case ch == 'X':
		head = append(head, '0', 'X')
	}

	sol := radix.ForRadix(base)
	work := append([]arith.Word(nil), mag...)

	width, widthSet := s.Width()
	precision, precisionSet := s.Precision()
	if !widthSet && !precisionSet {
		s.Write(radix.Encode(work, sol, c, head, nil))
		return
	}

	digits := radix.Encode(work, sol, c, nil, nil)

	var left, zeroes, right int
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeroes = precision - len(digits)
		case len(digits) == 1 && digits[0] == '0' && precision == 0:
			return
		}
	}

	length := len(head) + zeroes + len(digits)
	if widthSet && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && !precisionSet:
			zeroes = d
		default:
			left = d
		}
	}

	writeMultiple(s, ' ', left)
	s.Write(head)
	writeMultiple(s, '0', zeroes)
	s.Write(digits)
	writeMultiple(s, ' ', right)
}

func writeMultiple(w io.Writer, b byte, count int) {
	if count <= 0 {
		return
	}
	buf := make([]byte, count)
	for i := range buf {
		buf[i] = b
	}
	w.Write(buf)
}
