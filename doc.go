/*
Package num provides uint128 (U128), int128 (I128) and uint256 (U256)
fixed-width integers, an arbitrary-width signed integer (Int), and text
conversion for all of them in any radix from 2 to 36.

U128, I128, U256 and Int are value types; all operations return new values.

Simple example:

	u, _, _ := U128FromText("zzzzzzzzzzzzzzzzzzzzzzzz", 36)
	fmt.Println(u.Text(16))
	// Output: 10e425c56daffabc35c0ffffffffffff

Values can be created from text in several ways:

	U128FromString(s string) (out U128, accurate bool, err error)
	U128FromText(s string, base int) (out U128, accurate bool, err error)
	I128FromString(s string) (out I128, accurate bool, err error)
	I128FromText(s string, base int) (out I128, accurate bool, err error)
	U256FromString(s string) (out U256, accurate bool, err error)
	U256FromText(s string, base int) (out U256, accurate bool, err error)
	IntFromString(s string) (Int, error)
	IntFromText(s string, base int) (Int, error)

The FromString variants accept an optional sign followed by an optional
"0x", "0o" or "0b" marker; without a marker the digits are decimal. The
FromText variants take an explicit base, in which case no marker is
recognised: "0x" in base 36 is the number 33. Letters are accepted in either
case. Text that is not a number returns an error of class Error wrapping
ErrSyntax. Values that do not fit the type saturate and report
accurate == false.

Text(base) writes lower-case digits with a leading '-' for negative values.
The types also support the following formatting and marshalling interfaces:

	- fmt.Formatter ('b', 'o', 'O', 'd', 'x', 'X', 's', 'v' and the usual flags)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Conversion never goes through math/big. Radixes whose digits tile a machine
word exactly (2, 4, 16) are converted with shifts and masks; every other
radix is converted a word-sized chunk of digits at a time with a single
multiply-add or divide per word.
*/
package num
