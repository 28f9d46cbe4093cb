package bwt

import "math/bits"

// sampledSA is a sparse, associative subset of the full suffix array: only
// rows i where SA[i] is a multiple of step are retained. A hash map is the
// adequate choice the design notes call for - O(1) expected membership test,
// no mutation after build.
type sampledSA struct {
	step    int
	samples map[int]int // row -> SA[row], present only for sampled rows
}

// sampleStep computes s = floor(log2 n), the sample density from the data
// model. n >= 4 is already guaranteed by the caller, so s >= 2.
func sampleStep(n int) int {
	s := bits.Len(uint(n)) - 1
	if s < 1 {
		s = 1
	}
	return s
}

func buildSampledSA(sa []int32, step int) sampledSA {
	samples := make(map[int]int, len(sa)/step+1)
	for row, value := range sa {
		if int(value)%step == 0 {
			samples[row] = int(value)
		}
	}
	return sampledSA{step: step, samples: samples}
}

func (s sampledSA) lookup(row int) (int, bool) {
	v, ok := s.samples[row]
	return v, ok
}
