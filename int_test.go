package num

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func ints(s string) Int {
	v, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func randBigInt(rng *rand.Rand, maxBits int) *big.Int {
	n := RandInt(rng, rng.Intn(maxBits+1)).AsBigInt()
	if rng.Intn(2) == 0 {
		n.Neg(n)
	}
	return n
}

func TestIntFromText(t *testing.T) {
	for idx, tc := range []struct {
		in   string
		base int
		out  string
	}{
		{"0", 10, "0"},
		{"-0", 10, "0"},
		{"-000", 16, "0"},
		{"+1", 10, "1"},
		{"-1", 10, "-1"},
		{"-0x" + strings.Repeat("f", 100), 0, "-0x" + strings.Repeat("f", 100)},
		{"1" + strings.Repeat("0", 200), 10, "1" + strings.Repeat("0", 200)},
		{"-ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ", 36, "-" + strings.Repeat("z", 53)},
	} {
		t.Run(fmt.Sprintf("%d/%q,%d", idx, tc.in, tc.base), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := IntFromText(tc.in, tc.base)
			tt.MustOK(err)

			expected, ok := new(big.Int).SetString(tc.out, 0)
			if !ok {
				expected, ok = new(big.Int).SetString(tc.out, 36)
			}
			tt.MustAssert(ok)
			tt.MustEqual(expected.String(), v.String())
			tt.MustEqual(expected.Sign(), v.Sign())
		})
	}
}

func TestIntFromTextInvalid(t *testing.T) {
	for idx, tc := range []string{"", "-", "0x", "-0b", "0b102", "1,000", "+ 1"} {
		t.Run(fmt.Sprintf("%d/%q", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := IntFromString(tc)
			tt.MustAssert(errors.Is(err, ErrSyntax), "%v", err)
			tt.MustAssert(v.IsZero())
		})
	}
}

func TestIntTextMatchesBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 2000; i++ {
		b := randBigInt(rng, 1024)
		x := IntFromBigInt(b)
		base := MinBase + i%(MaxBase-MinBase+1)

		text := x.Text(base)
		tt.MustEqual(b.Text(base), text)
		tt.MustEqual(strings.ToUpper(b.Text(base)), string(x.Append(nil, base, true)))

		back, err := IntFromText(text, base)
		tt.MustOK(err)
		tt.MustAssert(back.Equal(x), "%s != %s", back, x)
		tt.MustEqual(0, b.Cmp(back.AsBigInt()))
	}
}

func TestIntAppend(t *testing.T) {
	tt := assert.WrapTB(t)
	dst := []byte("n=")
	dst = IntFrom64(-255).Append(dst, 16, true)
	tt.MustEqual("n=-FF", string(dst))
	dst = IntFrom64(0).Append(dst[:0], 2, false)
	tt.MustEqual("0", string(dst))
}

func TestIntFormat(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(5))

	tt.MustEqual("-0x2a", fmt.Sprintf("%#x", IntFrom64(-42)))
	tt.MustEqual("+0", fmt.Sprintf("%+d", Int{}))
	tt.MustEqual("%!z(num.Int=-1)", fmt.Sprintf("%z", IntFrom64(-1)))

	for i := 0; i < 500; i++ {
		b := randBigInt(rng, 512)
		x := IntFromBigInt(b)
		for _, f := range []string{"%d", "%X", "%#o", "%O", "%+200d", "% x", "%-200b|", "%0200x", "%.160d"} {
			tt.MustEqual(fmt.Sprintf(f, b), fmt.Sprintf(f, x), "%s", f)
		}
	}
}

func TestIntCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   string
		result int
	}{
		{"0", "0", 0},
		{"0", "-0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "0", -1},
		{"0", "-1", 1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"-1", "-2", 1},
		{"-2", "-1", -1},
		{"-5", "-5", 0},
		{"0x1" + strings.Repeat("0", 40), "0x" + strings.Repeat("f", 40), 1},
		{"-0x1" + strings.Repeat("0", 40), "-0x" + strings.Repeat("f", 40), -1},
		{"-0x1" + strings.Repeat("0", 40), "0x" + strings.Repeat("f", 40), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := ints(tc.a), ints(tc.b)
			tt.MustEqual(tc.result, a.Cmp(b))
			tt.MustEqual(-tc.result, b.Cmp(a))
			tt.MustEqual(a.AsBigInt().Cmp(b.AsBigInt()), a.Cmp(b))
		})
	}
}

func TestIntCmpRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 5000; i++ {
		b1, b2 := randBigInt(rng, 256), randBigInt(rng, 256)
		x1, x2 := IntFromBigInt(b1), IntFromBigInt(b2)
		tt.MustEqual(b1.Cmp(b2), x1.Cmp(x2), "%s <=> %s", b1, b2)
		tt.MustEqual(b1.CmpAbs(b2), x1.CmpAbs(x2), "|%s| <=> |%s|", b1, b2)
	}
}

func TestIntSignNegAbs(t *testing.T) {
	tt := assert.WrapTB(t)

	zero := Int{}
	tt.MustEqual(0, zero.Sign())
	tt.MustEqual(0, zero.Neg().Sign())
	tt.MustEqual("0", zero.Neg().String())

	x := ints("-12345678901234567890123456789")
	tt.MustEqual(-1, x.Sign())
	tt.MustEqual(1, x.Neg().Sign())
	tt.MustEqual("12345678901234567890123456789", x.Abs().String())
	tt.MustEqual(x.AsBigInt().BitLen(), x.BitLen())

	// Neg and Abs must not disturb the receiver:
	_ = x.Neg()
	tt.MustEqual("-12345678901234567890123456789", x.String())
}

func TestIntBitsIsCopy(t *testing.T) {
	tt := assert.WrapTB(t)

	words := bigs("0x1234567890abcdef1234567890abcdef").Bits()
	x := IntFromBits(false, words)
	words[0] = 0
	tt.MustEqual("0x1234567890abcdef1234567890abcdef", fmt.Sprintf("%#x", x))

	out := x.Bits()
	out[0] = 0
	tt.MustEqual("0x1234567890abcdef1234567890abcdef", fmt.Sprintf("%#x", x))

	tt.MustEqual(0, IntFromBits(true, nil).Sign())
}

func TestIntConversions(t *testing.T) {
	tt := assert.WrapTB(t)

	u, acc := IntFromU128(MaxU128).AsU128()
	tt.MustAssert(acc)
	tt.MustEqual(MaxU128, u)

	_, acc = IntFromU128(MaxU128).Neg().AsU128()
	tt.MustAssert(!acc)

	u, acc = IntFromU256(MaxU256).AsU128()
	tt.MustAssert(!acc)
	tt.MustEqual(MaxU128, u)

	i, acc := IntFromI128(MinI128).AsI128()
	tt.MustAssert(acc)
	tt.MustEqual(MinI128, i)
	tt.MustEqual("-170141183460469231731687303715884105728", IntFromI128(MinI128).String())

	i, acc = IntFromI128(MinI128).Abs().AsI128()
	tt.MustAssert(!acc)
	tt.MustEqual(MaxI128, i)

	w, acc := IntFromU256(MaxU256).AsU256()
	tt.MustAssert(acc)
	tt.MustEqual(MaxU256, w)

	tt.MustEqual("-9223372036854775808", IntFrom64(-9223372036854775808).String())
	tt.MustEqual("18446744073709551615", IntFromU64(maxUint64).String())
}

func TestIntMarshal(t *testing.T) {
	tt := assert.WrapTB(t)

	type doc struct {
		N Int `json:"n"`
	}

	huge := "-" + strings.Repeat("9", 100)
	var d doc
	tt.MustOK(json.Unmarshal([]byte(`{"n":"`+huge+`"}`), &d))
	tt.MustEqual(huge, d.N.String())

	bts, err := json.Marshal(d)
	tt.MustOK(err)
	tt.MustEqual(`{"n":"`+huge+`"}`, string(bts))

	tt.MustOK(json.Unmarshal([]byte(`{"n":-7}`), &d))
	tt.MustEqual("-7", d.N.String())

	tt.MustAssert(json.Unmarshal([]byte(`{"n":"7x"}`), &d) != nil)

	var x Int
	tt.MustOK(x.UnmarshalText([]byte("-0b1010")))
	tt.MustEqual("-10", x.String())
	txt, err := x.MarshalText()
	tt.MustOK(err)
	tt.MustEqual("-10", string(txt))
}
