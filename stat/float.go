package stat

import (
	"github.com/strawboat/strawboat/internal/prim"
)

// Float summarizes a primitive floating-point page for codec selection. It
// has the same shape as Integer; distinct-value hashing goes through the
// bit-pattern total-order wrapper (prim.FloatBits) so that NaN is hashable
// and ±0 are not collapsed together.
type Float[T prim.Float] struct {
	Len           int
	NullCount     int
	TotalBytes    int
	Sorted        bool
	Min, Max      T
	UniqueCount   int
	SetCount      int
	AverageRunLen int
}

// CollectFloat mirrors CollectInteger's single pass, but runs equality and
// hashing through the bit-pattern wrapper instead of floating-point ==.
func CollectFloat[T prim.Float](values []T, present func(i int) bool) Float[T] {
	n := len(values)
	st := Float[T]{Len: n, TotalBytes: n * prim.Size[T](), Sorted: true}
	if n == 0 {
		return st
	}

	isPresent := func(i int) bool {
		return present == nil || present(i)
	}

	hs := newHashSet[uint64]()
	st.Min = values[0]
	st.Max = values[0]
	lastBits := prim.FloatBits(values[0])
	runCount := 0
	if isPresent(0) {
		runCount = 1
	}

	var prevSet T
	haveSet := false

	for i := 0; i < n; i++ {
		v := values[i]
		bits := prim.FloatBits(v)
		hs.add(bits, bits)

		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}

		if isPresent(i) {
			st.SetCount++
			if bits != lastBits {
				runCount++
				lastBits = bits
			}
			if haveSet && v < prevSet {
				st.Sorted = false
			}
			prevSet = v
			haveSet = true
		}
	}

	if runCount == 0 {
		runCount = 1
	}

	st.UniqueCount = hs.Count()
	st.NullCount = n - st.SetCount
	st.AverageRunLen = n / runCount

	return st
}
