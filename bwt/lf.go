package bwt

// lf computes the LF mapping: the BWT row whose suffix-array value is one
// less than row i's. LF(sentinelIndex) is always 0, and i -> LF(i) is a
// permutation of [0, n+1).
func (idx Index) lf(i int) int {
	x := idx.symbolAt(i)
	return idx.c.at(x) + idx.rank.rank(x, i) - 1
}
