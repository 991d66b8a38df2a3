package radix

// CompareSigned three-way compares the signed values (lsign, lhs) and
// (rsign, rhs) given only a comparator for their magnitudes. The zero value
// of M must be the magnitude zero, which holds for both fixed-width value
// types and nil word slices.
//
// Plus zero and minus zero compare equal.
func CompareSigned[M any](lsign Sign, lhs M, rsign Sign, rhs M, cmp func(a, b M) int) int {
	if lsign == rsign {
		if lsign == Minus {
			return -cmp(lhs, rhs)
		}
		return cmp(lhs, rhs)
	}

	var zero M
	if cmp(lhs, zero) == 0 && cmp(rhs, zero) == 0 {
		return 0
	}

	// The signs differ and at least one side is non-zero, so the magnitudes
	// no longer matter: the side with the minus sign is the smaller one.
	r := 1
	if lsign == Minus {
		r = -r
	}
	return r
}
