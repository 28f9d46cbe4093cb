package suffixarray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildMississippi(t *testing.T) {
	// mississippi$ - the textbook suffix-array example.
	got := Build([]byte("mississippi$"))
	want := []int32{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIsPermutation(t *testing.T) {
	inputs := []string{
		"0010110101$",
		"10111$",
		"00000000$",
		"01010101010101010101$",
	}

	for _, in := range inputs {
		sa := Build([]byte(in))
		seen := make([]bool, len(in))
		for _, v := range sa {
			if v < 0 || int(v) >= len(in) || seen[v] {
				t.Fatalf("Build(%q) is not a permutation: %v", in, sa)
			}
			seen[v] = true
		}
	}
}

func TestBuildOrdersLexicographically(t *testing.T) {
	in := "0010110101$"
	sa := Build([]byte(in))
	for i := 1; i < len(sa); i++ {
		a, b := in[sa[i-1]:], in[sa[i]:]
		if a >= b {
			t.Fatalf("suffix at sa[%d]=%q not < suffix at sa[%d]=%q", i-1, a, i, b)
		}
	}
}

func TestBuildEmptyAndSingleton(t *testing.T) {
	if got := Build(nil); len(got) != 0 {
		t.Fatalf("Build(nil) = %v, want empty", got)
	}
	if got := Build([]byte("$")); !equal(got, []int32{0}) {
		t.Fatalf("Build(\"$\") = %v, want [0]", got)
	}
}

func equal(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
