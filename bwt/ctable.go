package bwt

// cTable holds the cumulative Symbol counts used by LF-mapping: c[x] is the
// number of positions in the text whose Symbol is strictly less than x,
// under the ordering $ < 0 < 1.
type cTable struct {
	zero int // c[0]: count of $ (always 1)
	one  int // c[1]: 1 + count of 0s in S
}

func buildCTable(countOfZerosInS int) cTable {
	return cTable{
		zero: 1,
		one:  1 + countOfZerosInS,
	}
}

func (c cTable) at(s Symbol) int {
	switch s {
	case Sentinel:
		return 0
	case Zero:
		return c.zero
	case One:
		return c.one
	default:
		panic("bwt: c-table lookup for unknown Symbol")
	}
}
