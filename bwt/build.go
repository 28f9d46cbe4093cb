package bwt

import (
	"github.com/bebop/fmidx/internal/suffixarray"
)

// Index is a built, read-only FM-index over a binary text. It is safe for
// concurrent use by any number of goroutines: nothing mutates after Build
// returns.
type Index struct {
	n             int // len(S), the original text length
	sentinelIndex int
	bwt           bitvector
	rank          rankDirectory
	c             cTable
	samples       sampledSA
}

// Len returns the length of the original text S (not counting the
// sentinel).
func (idx Index) Len() int {
	return idx.n
}

// Build constructs an Index from S, a string over {0,1}. It fails with an
// InvalidInput error when S is shorter than 4 symbols or contains anything
// outside {0,1}.
func Build(s string) (idx Index, err error) {
	defer recoverAsInternalInvariant("Build", &err)

	if len(s) < 4 {
		return Index{}, invalidInputf("S must have length >= 4, got %d", len(s))
	}

	zeros := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			zeros++
		case '1':
			// no count needed; c[1] only needs the zero count
		default:
			return Index{}, invalidInputf("S contains non-binary symbol %q at offset %d", s[i], i)
		}
	}

	n := len(s)

	// $ (0x24) sorts below '0' (0x30) and '1' (0x31) in ASCII, so the raw
	// bytes of S+"$" already carry the ordering the suffix array needs.
	text := make([]byte, n+1)
	copy(text, s)
	text[n] = '$'

	sa := suffixarray.Build(text)
	if len(sa) != n+1 {
		return Index{}, internalInvariantf("suffix array length %d, want %d", len(sa), n+1)
	}

	bv, sentinelIndex, err := buildBWTBitvector(s, sa, n)
	if err != nil {
		return Index{}, err
	}

	rd := buildRankDirectory(bv, sentinelIndex, n)
	ct := buildCTable(zeros)
	step := sampleStep(n)
	samples := buildSampledSA(sa, step)

	return Index{
		n:             n,
		sentinelIndex: sentinelIndex,
		bwt:           bv,
		rank:          rd,
		c:             ct,
		samples:       samples,
	}, nil
}

// buildBWTBitvector derives the BWT of S$ from SA: BWT[i] = S[SA[i]-1] for
// SA[i] > 0, and BWT[i] = $ at the unique row where SA[i] = 0. The bit at
// that row is left false; rank.go and symbolAt never read it as data.
func buildBWTBitvector(s string, sa []int32, n int) (bitvector, int, error) {
	bv := newBitVector(n + 1)
	sentinelIndex := -1

	for row, saVal := range sa {
		if saVal == 0 {
			sentinelIndex = row
			continue
		}
		sym, ok := symbolFromByte(s[saVal-1])
		if !ok {
			return bitvector{}, 0, internalInvariantf("unexpected byte %q in S during BWT construction", s[saVal-1])
		}
		bv.setBit(row, sym.bit())
	}

	if sentinelIndex < 0 {
		return bitvector{}, 0, internalInvariantf("no suffix-array row with SA[i] == 0; sentinel not found")
	}

	return bv, sentinelIndex, nil
}

// symbolAt returns the BWT symbol at row i, mapping the sentinel row to
// Sentinel regardless of the placeholder bit stored there.
func (idx Index) symbolAt(i int) Symbol {
	if i == idx.sentinelIndex {
		return Sentinel
	}
	if idx.bwt.getBit(i) {
		return One
	}
	return Zero
}

// Rank returns the number of occurrences of c in BWT[0..i], inclusive of i.
// i is clamped into [-1, n] per the documented contract; rank never fails.
func (idx Index) Rank(c Symbol, i int) int {
	return idx.rank.rank(c, i)
}
