// Package suffixarray implements the external suffix-array contract the
// bwt package's BWT builder treats as a black box: sa(T) -> the permutation
// of [0, len(T)) that lists T's suffixes in lexicographic order.
//
// A production FM-index reaches for a linear-time construction (DC3 /
// SA-IS / divsufsort). The bwt package only ever passes three symbols
// ($, 0, 1), so this package uses a prefix-doubling rank refinement
// instead - sort suffixes by their first 2^k symbols, doubling k each
// round. Each round is a comparison sort, so the whole build is
// O(n log^2 n) rather than linear; in exchange it needs no dedicated SA-IS
// port and stays small enough to ground entirely in this codebase's own
// sort idiom. Any byte values are accepted, not just those three.
package suffixarray

import "golang.org/x/exp/slices"

// Build returns the suffix array of t: a permutation of [0, len(t)) such
// that t[sa[i]:] is the i-th lexicographically smallest suffix of t. It
// treats byte value as the sort key directly, so callers that need a
// sentinel smaller than every data symbol (as the bwt package does with
// '$' = 0x24 versus '0'/'1' = 0x30/0x31) get that ordering for free.
func Build(t []byte) []int32 {
	n := len(t)
	sa := make([]int32, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int(t[i])
	}
	if n <= 1 {
		return sa
	}

	tmp := make([]int, n)
	less := func(k int) func(a, b int32) int {
		return func(a, b int32) int {
			if rank[a] != rank[b] {
				return rank[a] - rank[b]
			}
			ra, rb := -1, -1
			if int(a)+k < n {
				ra = rank[a+int32(k)]
			}
			if int(b)+k < n {
				rb = rank[b+int32(k)]
			}
			return ra - rb
		}
	}

	for k := 1; k < n; k *= 2 {
		cmp := less(k)
		slices.SortFunc(sa, cmp)

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if cmp(sa[i-1], sa[i]) < 0 {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)

		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return sa
}
