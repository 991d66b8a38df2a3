package num

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/shabbyrobe/go-numtext/internal/arith"
	"github.com/shabbyrobe/go-numtext/internal/radix"
)

type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromString creates a U128 from a string. A "0x", "0o" or "0b" prefix
// selects the radix, otherwise the string is read as decimal. Overflow
// truncates to MaxU128 and sets accurate to 'false'. Negative values other
// than "-0" return 0 and set accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	return U128FromText(s, 0)
}

// U128FromText is like U128FromString, but reads s in the given radix, which
// must be 0 or between MinBase and MaxBase. A radix marker is only recognised
// when base is 0.
func U128FromText(s string, base int) (out U128, accurate bool, err error) {
	sign, mag, err := parseText("u128", s, base)
	if err != nil {
		return out, false, err
	}
	if sign == radix.Minus && len(mag) > 0 {
		return out, false, nil
	}
	out, accurate = U128FromBits(mag)
	return out, accurate, nil
}

// U128FromBits creates a U128 from a little-endian magnitude, such as the
// result of big.Int.Bits(). Overflow truncates to MaxU128 and sets accurate
// to 'false'.
func U128FromBits(words []big.Word) (out U128, accurate bool) {
	var limbs [2]uint64
	if !fillLimbs(limbs[:], words) {
		return MaxU128, false
	}
	return U128{hi: limbs[1], lo: limbs[0]}, true
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	return U128FromBits(v.Bits())
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Bits returns the normalized little-endian magnitude of u. Zero has no words.
// See U128FromBits() for the counterpart.
func (u U128) Bits() []big.Word {
	return appendLimbs(make([]arith.Word, 0, 128/intSize), u.lo, u.hi)
}

func (u U128) String() string { return u.Text(10) }

// Text returns the string representation of u in the given radix, using
// lower-case letters for digits >= 10.
func (u U128) Text(base int) string {
	return formatText(radix.Plus, u.Bits(), base)
}

// Format implements fmt.Formatter. See the package documentation for the
// supported verbs.
func (u U128) Format(s fmt.State, c rune) {
	formatState(s, c, "num.U128", radix.Plus, u.Bits())
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	b.SetBits(appendLimbs(b.Bits()[:0], u.lo, u.hi))
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// Mul returns the low 128 bits of u*n.
func (u U128) Mul(n U128) (dest U128) {
	dest.hi, dest.lo = bits.Mul64(u.lo, n.lo)
	dest.hi += u.hi*n.lo + u.lo*n.hi
	return dest
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool            { return u.hi == n.hi && u.lo == n.lo }
func (u U128) GreaterThan(n U128) bool      { return u.Cmp(n) > 0 }
func (u U128) GreaterOrEqualTo(n U128) bool { return u.Cmp(n) >= 0 }
func (u U128) LessThan(n U128) bool         { return u.Cmp(n) < 0 }
func (u U128) LessOrEqualTo(n U128) bool    { return u.Cmp(n) <= 0 }

func (u U128) And(v U128) U128 { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) Or(v U128) U128  { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Xor(v U128) U128 { return U128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }
func (u U128) Not() U128       { return U128{hi: ^u.hi, lo: ^u.lo} }

func (u U128) Lsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n >= 64:
		v.hi = u.lo << (n - 64)
	default:
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n >= 64:
		v.lo = u.hi >> (n - 64)
	default:
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the number of bits required to represent u.
func (u U128) BitLen() int { return 128 - int(u.LeadingZeros()) }

func (u U128) MarshalText() ([]byte, error) {
	return radix.AppendText(nil, radix.Plus, u.Bits(), 10, radix.Lower), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	sign, mag, err := parseJSON("u128", bts)
	if err != nil {
		return err
	}
	v, accurate := U128FromBits(mag)
	if (sign == radix.Minus && len(mag) > 0) || !accurate {
		return Error.New("u128 JSON %q out of range", string(bts))
	}
	*u = v
	return nil
}
