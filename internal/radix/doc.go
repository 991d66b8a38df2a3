/*
Package radix converts between magnitudes (little-endian []arith.Word) and
digit strings in any radix from 2 to 36.

Every conversion starts from a Solution, which records how many digits of the
radix fit into one word. Radixes whose digits tile a word exactly (2, 4 and 16)
are Perfect and convert by shifting and masking. All other radixes, including
8 and 32, are Imperfect and convert by multiplying or dividing whole magnitudes
by the largest power of the radix that fits in a word, one chunk of digits
at a time.

Text accepted by Decode:

	[+-]? (0x|0X|0o|0O|0b|0B)? digit+

where the radix marker is only honoured when no explicit radix is given.
Letters are case-insensitive. Encode never emits a radix marker or a sign on
its own; callers pass those in as a prefix.

Nothing in this package keeps state between calls, so conversions on
independent inputs are safe to run concurrently.
*/
package radix
