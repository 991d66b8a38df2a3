package num

import (
	"fmt"
	"math/big"
	"strings"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchBytesResult  []byte
	BenchIntResult    int
	BenchI128Result   I128
	BenchStringResult string
	BenchU128Result   U128
	BenchU256Result   U256
	BenchNumIntResult Int
)

var benchTextBases = []int{2, 8, 10, 16, 36}

func BenchmarkU128Text(b *testing.B) {
	u := MaxU128
	for _, base := range benchTextBases {
		b.Run(fmt.Sprint(base), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = u.Text(base)
			}
		})
	}
}

func BenchmarkU128FromText(b *testing.B) {
	for _, base := range benchTextBases {
		s := MaxU128.Text(base)
		b.Run(fmt.Sprint(base), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _, _ = U128FromText(s, base)
			}
		})
	}
}

func BenchmarkU128String(b *testing.B) {
	for _, bi := range []U128{
		u128s("0"),
		u128s("0xfedcba98"),
		u128s("0xfedcba9876543210"),
		u128s("0xfedcba9876543210fedcba98"),
		u128s("0xfedcba9876543210fedcba9876543210"),
	} {
		b.Run(fmt.Sprintf("%x", bi.AsBigInt()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bi.String()
			}
		})
	}
}

func BenchmarkU128Format(b *testing.B) {
	u := u128s("0xfedcba9876543210fedcba9876543210")
	for _, f := range []string{"%d", "%x", "%#x", "%40d"} {
		b.Run(f, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = fmt.Sprintf(f, u)
			}
		})
	}
}

func BenchmarkU128Cmp(b *testing.B) {
	u := U128From64(maxUint64)
	n := U128From64(maxUint64)
	for i := 0; i < b.N; i++ {
		BenchIntResult = u.Cmp(n)
	}
}

func BenchmarkI128Text(b *testing.B) {
	v := MinI128
	for _, base := range benchTextBases {
		b.Run(fmt.Sprint(base), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = v.Text(base)
			}
		})
	}
}

func BenchmarkI128FromString(b *testing.B) {
	s := MinI128.String()
	for i := 0; i < b.N; i++ {
		BenchI128Result, _, _ = I128FromString(s)
	}
}

func BenchmarkI128LessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b I128
	}{
		{i64(1), i64(1)},
		{i64(2), i64(1)},
		{i64(-1), i64(-2)},
		{i64(-2), i64(1)},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}

func BenchmarkU256FromText(b *testing.B) {
	for _, base := range benchTextBases {
		s := MaxU256.Text(base)
		b.Run(fmt.Sprint(base), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU256Result, _, _ = U256FromText(s, base)
			}
		})
	}
}

func BenchmarkIntText(b *testing.B) {
	for _, digits := range []int{10, 100, 1000} {
		x := ints(strings.Repeat("9", digits))
		b.Run(fmt.Sprint(digits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBytesResult = x.Append(BenchBytesResult[:0], 10, false)
			}
		})
	}
}

func BenchmarkIntFromText(b *testing.B) {
	for _, digits := range []int{10, 100, 1000} {
		s := strings.Repeat("9", digits)
		b.Run(fmt.Sprint(digits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumIntResult, _ = IntFromText(s, 10)
			}
		})
	}
}

func BenchmarkBigIntText(b *testing.B) {
	for _, digits := range []int{10, 100, 1000} {
		x, _ := new(big.Int).SetString(strings.Repeat("9", digits), 10)
		b.Run(fmt.Sprint(digits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBytesResult = x.Append(BenchBytesResult[:0], 10)
			}
		})
	}
}

func BenchmarkBigIntSetString(b *testing.B) {
	for _, digits := range []int{10, 100, 1000} {
		s := strings.Repeat("9", digits)
		b.Run(fmt.Sprint(digits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBigIntResult, _ = new(big.Int).SetString(s, 10)
			}
		})
	}
}
