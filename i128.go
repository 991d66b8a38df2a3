package num

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/shabbyrobe/go-numtext/internal/radix"
)

type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit = 0x8000000000000000
)

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// I128FromString creates a I128 from a string. An optional sign may be
// followed by a "0x", "0o" or "0b" prefix to select the radix, otherwise the
// digits are read as decimal. Overflow truncates to MaxI128/MinI128 and sets
// accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	return I128FromText(s, 0)
}

// I128FromText is like I128FromString, but reads s in the given radix, which
// must be 0 or between MinBase and MaxBase.
func I128FromText(s string, base int) (out I128, accurate bool, err error) {
	sign, mag, err := parseText("i128", s, base)
	if err != nil {
		return out, false, err
	}
	out, accurate = i128FromSignMag(sign, mag)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	sign := radix.Plus
	if v.Sign() < 0 {
		sign = radix.Minus
	}
	return i128FromSignMag(sign, v.Bits())
}

func i128FromSignMag(sign radix.Sign, mag []big.Word) (out I128, accurate bool) {
	u, accurate := U128FromBits(mag)

	if sign == radix.Plus {
		if cmp := u.Cmp(maxI128AsU128); cmp > 0 {
			return MaxI128, false
		}
		return u.AsI128(), accurate

	} else {
		if cmp := u.Cmp(minI128AsAbsU128); cmp > 0 {
			return MinI128, false
		}
		return u.AsI128().Neg(), accurate
	}
}

// RandI128 generates a positive signed 128-bit random integer from an external
// source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// SignMagnitude splits i into its sign and absolute value. MinI128 has a
// magnitude of 1<<127, which a U128 can hold.
func (i I128) SignMagnitude() (neg bool, abs U128) {
	if i.hi&signBit == 0 {
		return false, i.AsU128()
	}
	return true, U128{}.Sub(i.AsU128())
}

func (i I128) signMag() (radix.Sign, U128) {
	neg, abs := i.SignMagnitude()
	if neg {
		return radix.Minus, abs
	}
	return radix.Plus, abs
}

func (i I128) String() string { return i.Text(10) }

// Text returns the string representation of i in the given radix, with a
// leading '-' if i is negative.
func (i I128) Text(base int) string {
	sign, abs := i.signMag()
	return formatText(sign, abs.Bits(), base)
}

// Format implements fmt.Formatter.
func (i I128) Format(s fmt.State, c rune) {
	sign, abs := i.signMag()
	formatState(s, c, "num.I128", sign, abs.Bits())
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg, abs := i.SignMagnitude()
	abs.IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() I128       { return i.AsU128().Inc().AsI128() }
func (i I128) Dec() I128       { return i.AsU128().Dec().AsI128() }
func (i I128) Add(n I128) I128 { return i.AsU128().Add(n.AsU128()).AsI128() }
func (i I128) Sub(n I128) I128 { return i.AsU128().Sub(n.AsU128()).AsI128() }
func (i I128) Mul(n I128) I128 { return i.AsU128().Mul(n.AsU128()).AsI128() }

func (i I128) Equal(n I128) bool            { return i == n }
func (i I128) LessThan(n I128) bool         { return i.Cmp(n) < 0 }
func (i I128) LessOrEqualTo(n I128) bool    { return i.Cmp(n) <= 0 }
func (i I128) GreaterThan(n I128) bool      { return i.Cmp(n) > 0 }
func (i I128) GreaterOrEqualTo(n I128) bool { return i.Cmp(n) >= 0 }

// Neg returns -i. Negating MinI128 overflows back to MinI128.
func (i I128) Neg() (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(0, i.lo, 0)
	v.hi, _ = bits.Sub64(0, i.hi, borrow)
	return v
}

// Abs returns the absolute value of i. Abs(MinI128) overflows to MinI128;
// use SignMagnitude to get the true magnitude.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i I128) Cmp(n I128) int {
	ls, lm := i.signMag()
	rs, rm := n.signMag()
	return radix.CompareSigned(ls, lm, rs, rm, U128.Cmp)
}

func (i I128) MarshalText() ([]byte, error) {
	sign, abs := i.signMag()
	return radix.AppendText(nil, sign, abs.Bits(), 10, radix.Lower), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	sign, mag, err := parseJSON("i128", bts)
	if err != nil {
		return err
	}
	v, accurate := i128FromSignMag(sign, mag)
	if !accurate {
		return Error.New("i128 JSON %q out of range", string(bts))
	}
	*i = v
	return nil
}
