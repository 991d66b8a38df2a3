package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"

	num "github.com/shabbyrobe/go-numtext"
)

func runOut(tt assert.T, args ...string) string {
	tt.Helper()
	var out bytes.Buffer
	tt.MustOK(run(args, &out))
	return out.String()
}

func TestRunConvert(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		out  string
	}{
		{"decimal", []string{"255"}, "255\n"},
		{"marker", []string{"-to", "2", "0xff"}, "11111111\n"},
		{"from", []string{"-from", "36", "-to", "10", "zz"}, "1295\n"},
		{"upper", []string{"-to", "16", "-upper", "255"}, "FF\n"},
		{"negative", []string{"-to", "16", "--", "-255"}, "-ff\n"},
		{"many", []string{"-to", "8", "8", "64"}, "10\n100\n"},
		{"u128", []string{"-type", "u128", "-to", "16", "340282366920938463463374607431768211455"}, strings.Repeat("f", 32) + "\n"},
		{"i128", []string{"-type", "i128", "-to", "16", "--", "-170141183460469231731687303715884105728"}, "-8" + strings.Repeat("0", 31) + "\n"},
		{"u256", []string{"-type", "U256", "-from", "16", "-to", "32", "ff"}, "7v\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, runOut(tt, tc.args...))
		})
	}
}

func TestRunDump(t *testing.T) {
	tt := assert.WrapTB(t)
	out := runOut(tt, "-dump", "-to", "10", "1")
	tt.MustAssert(strings.HasPrefix(out, "1\n"), "%q", out)
	tt.MustAssert(strings.Contains(out, "imperfect(base=10"), "%q", out)

	out = runOut(tt, "-dump", "-to", "16", "1")
	tt.MustAssert(strings.Contains(out, "perfect(base=16"), "%q", out)
}

func TestRunErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	var out bytes.Buffer

	err := run(nil, &out)
	tt.MustAssert(err != nil)
	tt.MustAssert(strings.Contains(out.String(), "Usage:"))

	err = run([]string{"-to", "37", "1"}, &out)
	tt.MustAssert(Error.Has(err))

	err = run([]string{"-from", "1", "1"}, &out)
	tt.MustAssert(Error.Has(err))

	err = run([]string{"-type", "u8", "1"}, &out)
	tt.MustAssert(Error.Has(err))

	err = run([]string{"-type", "u128", "340282366920938463463374607431768211456"}, &out)
	tt.MustAssert(Error.Has(err))

	err = run([]string{"-type", "u128", "--", "-1"}, &out)
	tt.MustAssert(Error.Has(err))

	err = run([]string{"-type", "i128", "170141183460469231731687303715884105728"}, &out)
	tt.MustAssert(Error.Has(err))

	err = run([]string{"12z"}, &out)
	tt.MustAssert(errors.Is(err, num.ErrSyntax))
	tt.MustAssert(num.Error.Has(err))
}
