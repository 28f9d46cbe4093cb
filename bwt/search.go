package bwt

import "sort"

// Occurrences returns every starting offset in S at which pattern P occurs,
// sorted ascending. P must be non-empty and drawn from {0,1}; a pattern
// containing anything else is rejected with InvalidInput.
func (idx Index) Occurrences(p string) (offsets []int, err error) {
	defer recoverAsInternalInvariant("Occurrences", &err)

	if len(p) == 0 {
		return nil, invalidInputf("pattern must be non-empty")
	}
	symbols := make([]Symbol, len(p))
	for i := 0; i < len(p); i++ {
		sym, ok := symbolFromByte(p[i])
		if !ok {
			return nil, invalidInputf("pattern contains non-binary symbol %q at offset %d", p[i], i)
		}
		symbols[i] = sym
	}

	s, e, found := idx.backwardSearch(symbols)
	if !found {
		return []int{}, nil
	}

	offsets = make([]int, 0, e-s+1)
	for row := s; row <= e; row++ {
		offset, err := idx.locate(row)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, offset)
	}
	sort.Ints(offsets)
	return offsets, nil
}

// backwardSearch narrows the closed BWT row interval [s, e] one pattern
// symbol at a time, from the end of p to its beginning. found is false when
// the interval collapses (s > e) at any step.
func (idx Index) backwardSearch(p []Symbol) (s, e int, found bool) {
	s, e = 0, idx.n
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		var rankBeforeS int
		if s > 0 {
			rankBeforeS = idx.rank.rank(c, s-1)
		}
		s = idx.c.at(c) + rankBeforeS
		e = idx.c.at(c) + idx.rank.rank(c, e) - 1
		if s > e {
			return 0, 0, false
		}
	}
	return s, e, true
}

// locate resolves BWT row i to its offset in S by walking LF until a
// sampled suffix-array entry is hit, then adding the number of steps taken.
// By sample density the loop terminates within sampleStep(idx.n) steps.
func (idx Index) locate(i int) (int, error) {
	steps := 0
	for {
		if value, ok := idx.samples.lookup(i); ok {
			return value + steps, nil
		}
		i = idx.lf(i)
		steps++
		if steps > idx.n+1 {
			return 0, internalInvariantf("locate did not terminate within %d LF-steps", idx.n+1)
		}
	}
}

// Locate returns SA[i], the suffix-array value of BWT row i. i must be in
// [0, n]; anything else is rejected with IndexOutOfRange.
func (idx Index) Locate(i int) (offset int, err error) {
	defer recoverAsInternalInvariant("Locate", &err)

	if i < 0 || i > idx.n {
		return 0, indexOutOfRangef("locate index %d out of range [0, %d]", i, idx.n)
	}
	return idx.locate(i)
}
