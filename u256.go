package num

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/shabbyrobe/go-numtext/internal/arith"
	"github.com/shabbyrobe/go-numtext/internal/radix"
)

// U256 is the double-width partner of U128. It implements construction,
// comparison, bitwise operations, addition and text conversion; the full
// arithmetic suite lives on U128.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256FromRaw(hi, hm, lm, lo uint64) U256 {
	return U256{hi: hi, hm: hm, lm: lm, lo: lo}
}

func U256From128(in U128) U256 {
	hi, lo := in.Raw()
	return U256{lm: hi, lo: lo}
}

func U256From64(in uint64) U256 {
	return U256{lo: in}
}

// U256FromString creates a U256 from a string, with the same rules as
// U128FromString. Overflow truncates to MaxU256 and sets accurate to 'false'.
func U256FromString(s string) (out U256, accurate bool, err error) {
	return U256FromText(s, 0)
}

// U256FromText reads s in the given radix, which must be 0 or between
// MinBase and MaxBase.
func U256FromText(s string, base int) (out U256, accurate bool, err error) {
	sign, mag, err := parseText("u256", s, base)
	if err != nil {
		return out, false, err
	}
	if sign == radix.Minus && len(mag) > 0 {
		return out, false, nil
	}
	out, accurate = U256FromBits(mag)
	return out, accurate, nil
}

// U256FromBits creates a U256 from a little-endian magnitude. Overflow
// truncates to MaxU256 and sets accurate to 'false'.
func U256FromBits(words []big.Word) (out U256, accurate bool) {
	var limbs [4]uint64
	if !fillLimbs(limbs[:], words) {
		return MaxU256, false
	}
	return U256{hi: limbs[3], hm: limbs[2], lm: limbs[1], lo: limbs[0]}, true
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	return U256FromBits(v.Bits())
}

func (u U256) IsZero() bool { return u == zeroU256 }

func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

// Bits returns the normalized little-endian magnitude of u.
func (u U256) Bits() []big.Word {
	return appendLimbs(make([]arith.Word, 0, 256/intSize), u.lo, u.lm, u.hm, u.hi)
}

func (u U256) And(n U256) U256 {
	return U256{hi: u.hi & n.hi, hm: u.hm & n.hm, lm: u.lm & n.lm, lo: u.lo & n.lo}
}

func (u U256) AndNot(n U256) U256 {
	return U256{hi: u.hi &^ n.hi, hm: u.hm &^ n.hm, lm: u.lm &^ n.lm, lo: u.lo &^ n.lo}
}

func (u U256) Or(n U256) U256 {
	return U256{hi: u.hi | n.hi, hm: u.hm | n.hm, lm: u.lm | n.lm, lo: u.lo | n.lo}
}

func (u U256) Xor(n U256) U256 {
	return U256{hi: u.hi ^ n.hi, hm: u.hm ^ n.hm, lm: u.lm ^ n.lm, lo: u.lo ^ n.lo}
}

func (u U256) Not() U256 {
	return U256{hi: ^u.hi, hm: ^u.hm, lm: ^u.lm, lo: ^u.lo}
}

func (u U256) IntoBigInt(b *big.Int) {
	b.SetBits(appendLimbs(b.Bits()[:0], u.lo, u.lm, u.hm, u.hi))
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(v U256) bool            { return u == v }
func (u U256) GreaterThan(v U256) bool      { return u.Cmp(v) > 0 }
func (u U256) GreaterOrEqualTo(v U256) bool { return u.Cmp(v) >= 0 }
func (u U256) LessThan(v U256) bool         { return u.Cmp(v) < 0 }
func (u U256) LessOrEqualTo(v U256) bool    { return u.Cmp(v) <= 0 }

func (u U256) Add(n U256) (v U256) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.lm, c = bits.Add64(u.lm, n.lm, c)
	v.hm, c = bits.Add64(u.hm, n.hm, c)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u U256) Sub(n U256) (v U256) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.lm, b = bits.Sub64(u.lm, n.lm, b)
	v.hm, b = bits.Sub64(u.hm, n.hm, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u U256) Inc() U256 { return u.Add(U256{lo: 1}) }
func (u U256) Dec() U256 { return u.Sub(U256{lo: 1}) }

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	}
	return uint(bits.LeadingZeros64(u.lo)) + 192
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	}
	return uint(bits.TrailingZeros64(u.hi)) + 192
}

func (u U256) Lsh(n uint) (v U256) {
	if n >= 256 {
		return v
	}
	for ; n >= 64; n -= 64 {
		u = U256{hi: u.hm, hm: u.lm, lm: u.lo}
	}
	if n == 0 {
		return u
	}
	return U256{
		hi: (u.hi << n) | (u.hm >> (64 - n)),
		hm: (u.hm << n) | (u.lm >> (64 - n)),
		lm: (u.lm << n) | (u.lo >> (64 - n)),
		lo: u.lo << n,
	}
}

func (u U256) Rsh(n uint) (v U256) {
	if n >= 256 {
		return v
	}
	for ; n >= 64; n -= 64 {
		u = U256{hm: u.hi, lm: u.hm, lo: u.lm}
	}
	if n == 0 {
		return u
	}
	return U256{
		hi: u.hi >> n,
		hm: (u.hm >> n) | (u.hi << (64 - n)),
		lm: (u.lm >> n) | (u.hm << (64 - n)),
		lo: (u.lo >> n) | (u.lm << (64 - n)),
	}
}

func (u U256) String() string { return u.Text(10) }

// Text returns the string representation of u in the given radix.
func (u U256) Text(base int) string {
	return formatText(radix.Plus, u.Bits(), base)
}

func (u U256) Format(s fmt.State, c rune) {
	formatState(s, c, "num.U256", radix.Plus, u.Bits())
}

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == 0 && u.hm == 0 && u.lm == 0 }

func (u U256) AsU128() U128 { return U128FromRaw(u.lm, u.lo) }

func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

func (u U256) MarshalText() ([]byte, error) {
	return radix.AppendText(nil, radix.Plus, u.Bits(), 10, radix.Lower), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, _, err := U256FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	sign, mag, err := parseJSON("u256", bts)
	if err != nil {
		return err
	}
	v, accurate := U256FromBits(mag)
	if (sign == radix.Minus && len(mag) > 0) || !accurate {
		return Error.New("u256 JSON %q out of range", string(bts))
	}
	*u = v
	return nil
}
