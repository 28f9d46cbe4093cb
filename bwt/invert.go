package bwt

// Invert reconstructs S from the index. LF(sentinelIndex) == 0, and walking
// LF forward from row 0 visits the rows whose suffix-array values are
// n, n-1, ..., 1 in turn - i.e. each step uncovers one character further
// back in S. The symbol read at each step is therefore prepended, not
// appended; this fills a fixed-size buffer from the end backward instead
// of building the string in reverse and flipping it.
func (idx Index) Invert() (s string, err error) {
	defer recoverAsInternalInvariant("Invert", &err)

	buf := make([]byte, idx.n)
	row := 0
	for i := idx.n - 1; i >= 0; i-- {
		sym := idx.symbolAt(row)
		if sym == Sentinel {
			return "", internalInvariantf("encountered sentinel while inverting at position %d", i)
		}
		if sym == One {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
		row = idx.lf(row)
	}

	return string(buf), nil
}
