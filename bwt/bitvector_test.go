package bwt

import "testing"

func TestBitVectorSetAndGet(t *testing.T) {
	bv := newBitVector(130)

	if bv.len() != 130 {
		t.Fatalf("len() = %d, want 130", bv.len())
	}
	if got := len(bv.words); got != 3 {
		t.Fatalf("word count = %d, want 3", got)
	}

	set := map[int]bool{0: true, 1: true, 63: true, 64: true, 65: true, 129: true}
	for i, v := range set {
		bv.setBit(i, v)
	}

	for i := 0; i < 130; i++ {
		want := set[i]
		if got := bv.getBit(i); got != want {
			t.Fatalf("getBit(%d) = %v, want %v", i, got, want)
		}
	}

	bv.setBit(64, false)
	if bv.getBit(64) {
		t.Fatal("getBit(64) = true after clearing, want false")
	}
}

func TestBitVectorOutOfBoundsPanics(t *testing.T) {
	bv := newBitVector(8)
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-bounds getBit")
		}
	}()
	bv.getBit(8)
}
