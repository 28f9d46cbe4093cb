package bwt

import "math/bits"

// rankDirectory answers rank(c, i) - the number of occurrences of Symbol c
// in BWT[0..i] - in O(1), using the classic three-level decomposition: a
// cumulative count per large block, a cumulative count per small block
// relative to its enclosing large block, and a fully materialized
// prefix-sum lookup table inside each small block.
//
// Because the alphabet is binary, only ones need a directory at all:
// rank(0, i) is derived arithmetically from rank(1, i) and the sentinel's
// position, and rank($, i) is a single comparison against sentinelIndex. A
// general-alphabet index would need one such directory per Symbol (or a
// wavelet tree); binary text never does.
type rankDirectory struct {
	bSmall        int // width of a small block, in bits
	bLarge        int // width of a large block, in bits (a multiple of bSmall)
	smallPerLarge int // small blocks per large block

	largeCum []int   // ones strictly before large block L
	smallCum []int   // ones strictly before small block K, relative to its large block
	lookup   [][]int // lookup[K][k] = ones in the first k+1 bits of small block K

	sentinelIndex int
	maxRow        int // n: the largest valid rank index (BWT length - 1)
}

// buildRankDirectory constructs the directory over bv, whose bit at
// sentinelIndex has already been forced to false by the BWT builder. n is
// the length of the original text S (bv itself holds n+1 bits before
// padding).
func buildRankDirectory(bv bitvector, sentinelIndex, n int) rankDirectory {
	floorLog2 := bits.Len(uint(n)) - 1 // n >= 4 so floorLog2 >= 2

	bSmall := floorLog2 / 2
	if bSmall < 1 {
		bSmall = 1
	}
	bLargeTarget := n
	if floorLog2*floorLog2 < bLargeTarget {
		bLargeTarget = floorLog2 * floorLog2
	}

	smallPerLarge := bLargeTarget / bSmall
	if smallPerLarge < 1 {
		smallPerLarge = 1
	}
	bLarge := smallPerLarge * bSmall

	bwtLen := bv.len()
	paddedLen := ceilToMultiple(bwtLen, bLarge)
	numSmallBlocks := paddedLen / bSmall
	numLargeBlocks := paddedLen / bLarge

	largeCum := make([]int, numLargeBlocks)
	smallCum := make([]int, numSmallBlocks)
	lookup := make([][]int, numSmallBlocks)

	ones := 0
	for l := 0; l < numLargeBlocks; l++ {
		largeCum[l] = ones
		largeOnes := 0
		for s := 0; s < smallPerLarge; s++ {
			k := l*smallPerLarge + s
			smallCum[k] = largeOnes
			block := make([]int, bSmall)
			running := 0
			for bit := 0; bit < bSmall; bit++ {
				pos := k*bSmall + bit
				if pos < bwtLen && bv.getBit(pos) {
					running++
				}
				block[bit] = running
			}
			lookup[k] = block
			largeOnes += running
		}
		ones += largeOnes
	}

	return rankDirectory{
		bSmall:        bSmall,
		bLarge:        bLarge,
		smallPerLarge: smallPerLarge,
		largeCum:      largeCum,
		smallCum:      smallCum,
		lookup:        lookup,
		sentinelIndex: sentinelIndex,
		maxRow:        n,
	}
}

func ceilToMultiple(n, multiple int) int {
	if multiple <= 0 {
		return n
	}
	rem := n % multiple
	if rem == 0 {
		return n
	}
	return n + (multiple - rem)
}

// rank returns the number of occurrences of c in BWT[0..i], inclusive. i is
// clamped to [-1, maxRow] first: rank of any i < 0 is 0, and any i >
// maxRow is treated as maxRow.
func (d rankDirectory) rank(c Symbol, i int) int {
	if i < -1 {
		i = -1
	}
	if i > d.maxRow {
		i = d.maxRow
	}

	switch c {
	case Sentinel:
		if i >= d.sentinelIndex {
			return 1
		}
		return 0
	case One:
		return d.rankOnes(i)
	case Zero:
		total := i + 1
		sentinelSeen := 0
		if i >= d.sentinelIndex {
			sentinelSeen = 1
		}
		return total - d.rankOnes(i) - sentinelSeen
	default:
		panic("bwt: rank called with unknown Symbol")
	}
}

func (d rankDirectory) rankOnes(i int) int {
	if i < 0 {
		return 0
	}
	large := i / d.bLarge
	small := large*d.smallPerLarge + (i%d.bLarge)/d.bSmall
	offset := i % d.bSmall
	return d.largeCum[large] + d.smallCum[small] + d.lookup[small][offset]
}
