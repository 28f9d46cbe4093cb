/*
Package bwt implements an FM-index over the binary alphabet {0,1}.

An FM-index is a compressed full-text self-index: once built from a sequence
S, it answers "where does pattern P occur in S?" without ever touching S
again. The index is built once from an in-memory sequence and is read-only
and safe for concurrent use by any number of goroutines thereafter.

# Burrows-Wheeler Transform

Building the index starts the same way a plain BWT does: append a unique,
minimal sentinel ($) to S, conceptually form every rotation of S$, sort them
lexicographically, and keep the last column. That last column is the BWT.
This package never materializes the rotation matrix; it builds the BWT from
a suffix array of S$ instead (see the internal/suffixarray package), which
is how any production implementation does it.

# LF Mapping

The BWT alone does not let you walk backward through the original text. The
LF mapping does: LF(i) is the row whose suffix-array value is one less than
row i's. Both backward search (narrowing a row range as a pattern is
matched right to left) and offset recovery (walking from an unsampled row to
the nearest sampled one) are repeated applications of LF.

# Rank, C-table, and the Sampled Suffix Array

LF needs two things in O(1): rank(c, i), the number of symbol c in BWT[0..i],
and the C-table, a cumulative count of symbols strictly less than c. rank is
answered by a three-level directory (large block / small block / in-block
lookup) rather than scanning the bitvector; see rank.go. Because the alphabet
here is binary, only one bitvector is ever needed - no wavelet tree, unlike a
general-alphabet BWT index.

Since storing the full suffix array defeats the point of a succinct index,
only every s-th entry is kept (sample.go); the rest are recovered by LF
stepping until a sampled row is hit.
*/
package bwt
