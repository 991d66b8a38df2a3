package num

import (
	"fmt"
	"math/big"

	"github.com/shabbyrobe/go-numtext/internal/arith"
	"github.com/shabbyrobe/go-numtext/internal/radix"
)

// Int is a signed integer of arbitrary width, stored as a sign and a
// normalized magnitude.
//
// Like U128 and I128, Int is a value type: no method modifies its receiver
// or shares its magnitude with the caller, so an Int can be copied freely.
// The zero value is 0.
type Int struct {
	neg bool
	abs []arith.Word
}

// IntFromString creates an Int from a string. An optional sign may be
// followed by a "0x", "0o" or "0b" prefix to select the radix, otherwise the
// digits are read as decimal.
func IntFromString(s string) (Int, error) {
	return IntFromText(s, 0)
}

// IntFromText reads s in the given radix, which must be 0 or between MinBase
// and MaxBase. A radix marker is only recognised when base is 0.
func IntFromText(s string, base int) (Int, error) {
	sign, mag, err := parseText("int", s, base)
	if err != nil {
		return Int{}, err
	}
	return intFromSignMag(sign, mag), nil
}

// IntFromBits creates an Int from a sign and a little-endian magnitude. The
// words are copied.
func IntFromBits(neg bool, words []big.Word) Int {
	abs := arith.Norm(words)
	abs = append(make([]arith.Word, 0, len(abs)), abs...)
	return Int{neg: neg && len(abs) > 0, abs: abs}
}

func IntFromBigInt(v *big.Int) Int {
	return IntFromBits(v.Sign() < 0, v.Bits())
}

func IntFrom64(v int64) Int   { return IntFromI128(I128From64(v)) }
func IntFromU64(v uint64) Int { return IntFromU128(U128From64(v)) }

func IntFromU128(v U128) Int {
	return Int{abs: v.Bits()}
}

func IntFromU256(v U256) Int {
	return Int{abs: v.Bits()}
}

func IntFromI128(v I128) Int {
	neg, abs := v.SignMagnitude()
	return IntFromBits(neg, abs.Bits())
}

func intFromSignMag(sign radix.Sign, mag []arith.Word) Int {
	return Int{neg: sign == radix.Minus && len(mag) > 0, abs: mag}
}

func (x Int) radixSign() radix.Sign {
	if x.neg {
		return radix.Minus
	}
	return radix.Plus
}

func (x Int) IsZero() bool { return len(x.abs) == 0 }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	}
	return 1
}

func (x Int) Neg() Int {
	x.neg = !x.neg && len(x.abs) > 0
	return x
}

func (x Int) Abs() Int {
	x.neg = false
	return x
}

// Bits returns a copy of the normalized little-endian magnitude of x.
func (x Int) Bits() []big.Word {
	return append([]arith.Word(nil), x.abs...)
}

// BitLen returns the length of the absolute value of x in bits.
func (x Int) BitLen() int { return arith.BitLen(x.abs) }

// Cmp compares x to y and returns -1, 0 or +1.
func (x Int) Cmp(y Int) int {
	return radix.CompareSigned(x.radixSign(), x.abs, y.radixSign(), y.abs, arith.Cmp)
}

// CmpAbs compares the absolute values of x and y.
func (x Int) CmpAbs(y Int) int { return arith.Cmp(x.abs, y.abs) }

func (x Int) Equal(y Int) bool       { return x.Cmp(y) == 0 }
func (x Int) LessThan(y Int) bool    { return x.Cmp(y) < 0 }
func (x Int) GreaterThan(y Int) bool { return x.Cmp(y) > 0 }

// AsU128 converts x to a U128. Values outside the range of a U128 saturate
// and set accurate to 'false'.
func (x Int) AsU128() (out U128, accurate bool) {
	if x.neg {
		return out, false
	}
	return U128FromBits(x.abs)
}

// AsI128 converts x to an I128. Values outside the range of an I128 saturate
// and set accurate to 'false'.
func (x Int) AsI128() (out I128, accurate bool) {
	return i128FromSignMag(x.radixSign(), x.abs)
}

// AsU256 converts x to a U256. Values outside the range of a U256 saturate
// and set accurate to 'false'.
func (x Int) AsU256() (out U256, accurate bool) {
	if x.neg {
		return out, false
	}
	return U256FromBits(x.abs)
}

func (x Int) IntoBigInt(b *big.Int) {
	b.SetBits(append(b.Bits()[:0], x.abs...))
	if x.neg {
		b.Neg(b)
	}
}

func (x Int) AsBigInt() *big.Int {
	var b big.Int
	x.IntoBigInt(&b)
	return &b
}

func (x Int) String() string { return x.Text(10) }

// Text returns the string representation of x in the given radix.
func (x Int) Text(base int) string {
	return formatText(x.radixSign(), x.abs, base)
}

// Append appends the text of x in the given radix to dst. upper selects
// upper-case letters for digits >= 10.
func (x Int) Append(dst []byte, base int, upper bool) []byte {
	c := radix.Lower
	if upper {
		c = radix.Upper
	}
	return radix.AppendText(dst, x.radixSign(), x.abs, base, c)
}

func (x Int) Format(s fmt.State, c rune) {
	formatState(s, c, "num.Int", x.radixSign(), x.abs)
}

func (x Int) MarshalText() ([]byte, error) {
	return x.Append(nil, 10, false), nil
}

func (x *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Int) UnmarshalJSON(bts []byte) (err error) {
	sign, mag, err := parseJSON("int", bts)
	if err != nil {
		return err
	}
	*x = intFromSignMag(sign, mag)
	return nil
}
