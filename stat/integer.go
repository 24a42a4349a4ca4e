// Package stat implements the single-pass statistics collector (C6) that
// feeds the codec cost models in policy.SelectInteger, SelectFloat and
// SelectBoolean.
package stat

import (
	"github.com/strawboat/strawboat/internal/prim"
)

// Integer summarizes a primitive integer page for codec selection.
//
// UniqueCount counts distinct storage values across all L slots, including
// null slots' underlying storage (an explicit Open Question in the design:
// either choice is acceptable as long downstream cost models are
// consistent with it, and this implementation is).
type Integer[T prim.Integer] struct {
	Len           int
	NullCount     int
	TotalBytes    int
	Sorted        bool
	Min, Max      T
	UniqueCount   int
	SetCount      int
	AverageRunLen int
}

// CollectInteger performs the single pass over values described in §4.2:
// min/max/last_value initialized to the first value, run_count starting at
// 1 iff the first slot is present, and a distinct-value counter updated
// unconditionally for every slot.
//
// present(i) reports whether slot i is non-null; pass nil to mean "all
// present" (no validity bitmap).
func CollectInteger[T prim.Integer](values []T, present func(i int) bool) Integer[T] {
	n := len(values)
	st := Integer[T]{Len: n, TotalBytes: n * prim.Size[T](), Sorted: true}
	if n == 0 {
		return st
	}

	isPresent := func(i int) bool {
		return present == nil || present(i)
	}

	hs := newHashSet[T]()
	st.Min = values[0]
	st.Max = values[0]
	last := values[0]
	runCount := 0
	if isPresent(0) {
		runCount = 1
	}

	var prevSet T
	haveSet := false

	for i := 0; i < n; i++ {
		v := values[i]

		var buf [8]byte
		prim.IntBytes(buf[:prim.Size[T]()], v)
		hs.add(hashBytes(buf[:prim.Size[T]()]), v)

		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}

		if isPresent(i) {
			st.SetCount++
			if v != last {
				runCount++
				last = v
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
