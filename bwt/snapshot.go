package bwt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Snapshot is the encoded, on-disk form of an Index, following the
// persisted-state layout this codebase documents: n, sentinelIndex, the
// packed BWT bitvector, the C-table, the rank directory's largeCum/
// smallCum/lookup tables, the sample step, and the sampled SA as (row,
// offset) pairs, all little-endian.
//
// Every snapshot carries two content digests over its payload: a BLAKE3
// fingerprint for fast corruption/truncation checks, and a SHA3-256 digest
// for callers that want a second, differently-constructed hash family
// before trusting a snapshot pulled from untrusted storage.
type Snapshot struct {
	Payload []byte
	BLAKE3  [32]byte
	SHA3    [32]byte
}

// Encode serializes idx into a Snapshot. Building the snapshot never fails
// for a validly built Index; the error return exists for symmetry with
// LoadSnapshot and to leave room for a future streaming encoder that can.
func Encode(idx Index) (Snapshot, error) {
	var buf bytes.Buffer

	writeInt(&buf, int64(idx.n))
	writeInt(&buf, int64(idx.sentinelIndex))

	writeInt(&buf, int64(idx.bwt.numberOfBits))
	writeInt(&buf, int64(len(idx.bwt.words)))
	for _, w := range idx.bwt.words {
		binary.Write(&buf, binary.LittleEndian, w)
	}

	writeInt(&buf, int64(idx.c.zero))
	writeInt(&buf, int64(idx.c.one))

	writeInt(&buf, int64(idx.rank.bSmall))
	writeInt(&buf, int64(idx.rank.bLarge))
	writeInt(&buf, int64(idx.rank.smallPerLarge))
	writeIntSlice(&buf, idx.rank.largeCum)
	writeIntSlice(&buf, idx.rank.smallCum)
	writeInt(&buf, int64(len(idx.rank.lookup)))
	for _, block := range idx.rank.lookup {
		writeIntSlice(&buf, block)
	}

	writeInt(&buf, int64(idx.samples.step))
	rows := make([]int, 0, len(idx.samples.samples))
	for row := range idx.samples.samples {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	writeInt(&buf, int64(len(rows)))
	for _, row := range rows {
		writeInt(&buf, int64(row))
		writeInt(&buf, int64(idx.samples.samples[row]))
	}

	payload := buf.Bytes()
	return Snapshot{
		Payload: payload,
		BLAKE3:  blake3.Sum256(payload),
		SHA3:    sha3.Sum256(payload),
	}, nil
}

// LoadSnapshot verifies both digests and decodes the payload back into an
// Index. A digest mismatch is reported as InternalInvariant: the payload
// was built by this package, so a mismatch means it was corrupted or
// truncated in transit, not that the caller passed something malformed.
func LoadSnapshot(snap Snapshot) (idx Index, err error) {
	defer recoverAsInternalInvariant("LoadSnapshot", &err)

	if got := blake3.Sum256(snap.Payload); got != snap.BLAKE3 {
		return Index{}, internalInvariantf("snapshot BLAKE3 mismatch: payload corrupted or truncated")
	}
	if got := sha3.Sum256(snap.Payload); got != snap.SHA3 {
		return Index{}, internalInvariantf("snapshot SHA3 mismatch: payload corrupted or truncated")
	}

	r := bytes.NewReader(snap.Payload)

	idx.n = int(readInt(r))
	idx.sentinelIndex = int(readInt(r))

	numberOfBits := int(readInt(r))
	numWords := int(readInt(r))
	words := make([]uint64, numWords)
	for i := range words {
		binary.Read(r, binary.LittleEndian, &words[i])
	}
	idx.bwt = bitvector{words: words, numberOfBits: numberOfBits}

	idx.c.zero = int(readInt(r))
	idx.c.one = int(readInt(r))

	idx.rank.bSmall = int(readInt(r))
	idx.rank.bLarge = int(readInt(r))
	idx.rank.smallPerLarge = int(readInt(r))
	idx.rank.largeCum = readIntSlice(r)
	idx.rank.smallCum = readIntSlice(r)
	numBlocks := int(readInt(r))
	idx.rank.lookup = make([][]int, numBlocks)
	for i := range idx.rank.lookup {
		idx.rank.lookup[i] = readIntSlice(r)
	}
	idx.rank.sentinelIndex = idx.sentinelIndex
	idx.rank.maxRow = idx.n

	step := int(readInt(r))
	numSamples := int(readInt(r))
	samples := make(map[int]int, numSamples)
	for i := 0; i < numSamples; i++ {
		row := int(readInt(r))
		offset := int(readInt(r))
		samples[row] = offset
	}
	idx.samples = sampledSA{step: step, samples: samples}

	if r.Len() != 0 {
		return Index{}, internalInvariantf("snapshot has %d trailing bytes after decoding", r.Len())
	}

	return idx, nil
}

func writeInt(buf *bytes.Buffer, v int64) {
	binary.Write(buf, binary.LittleEndian, v)
}

func writeIntSlice(buf *bytes.Buffer, s []int) {
	writeInt(buf, int64(len(s)))
	for _, v := range s {
		writeInt(buf, int64(v))
	}
}

func readInt(r *bytes.Reader) int64 {
	var v int64
	binary.Read(r, binary.LittleEndian, &v)
	return v
}

func readIntSlice(r *bytes.Reader) []int {
	n := int(readInt(r))
	s := make([]int, n)
	for i := range s {
		s[i] = int(readInt(r))
	}
	return s
}

// String reports a short, human-readable summary of a Snapshot's header
// (payload size and digest prefixes) without decoding the payload. The
// CLI's snapshot subcommand prints it after writing a snapshot file.
func (s Snapshot) String() string {
	return fmt.Sprintf("snapshot: %d payload bytes, blake3=%x, sha3=%x", len(s.Payload), s.BLAKE3[:4], s.SHA3[:4])
}

// Bytes returns the self-contained on-disk form of a Snapshot: both
// digests followed by the payload. A file written with Bytes can be
// decoded back into a Snapshot with ParseSnapshotFile without a caller
// having to persist the digests separately.
func (s Snapshot) Bytes() []byte {
	out := make([]byte, 0, len(s.BLAKE3)+len(s.SHA3)+len(s.Payload))
	out = append(out, s.BLAKE3[:]...)
	out = append(out, s.SHA3[:]...)
	out = append(out, s.Payload...)
	return out
}

// ParseSnapshotFile parses the layout Bytes writes. It does not verify the
// digests itself; callers pass the result to LoadSnapshot for that.
func ParseSnapshotFile(data []byte) (Snapshot, error) {
	if len(data) < 64 {
		return Snapshot{}, invalidInputf("snapshot file too short: got %d bytes, want at least 64", len(data))
	}
	var snap Snapshot
	copy(snap.BLAKE3[:], data[:32])
	copy(snap.SHA3[:], data[32:64])
	snap.Payload = data[64:]
	return snap, nil
}
