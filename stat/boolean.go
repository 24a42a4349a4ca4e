package stat

// Boolean summarizes a boolean page. Unlike Integer/Float there is no
// distinct-value histogram: a boolean page has at most two present values,
// so true/false counts subsume it.
type Boolean struct {
	Len           int
	NullCount     int
	TrueCount     int
	FalseCount    int
	AverageRunLen int

	// Uniform reports whether every one of the L storage slots (null or
	// not) holds the same bit, mirroring Integer/Float's
	// UniqueCount == 1 OneValue trigger.
	Uniform      bool
	UniformValue bool
}

// CollectBoolean performs a single pass computing true/false/null counts and
// the average run length of equal non-null values, expressed in bitmap
// bytes per §4.2 ("L / 8 / run_count, to reflect the bitmap unit").
func CollectBoolean(values []bool, present func(i int) bool) Boolean {
	n := len(values)
	st := Boolean{Len: n}
	if n == 0 {
		return st
	}

	isPresent := func(i int) bool {
		return present == nil || present(i)
	}

	runCount := 0
	var last bool
	haveLast := false

	st.Uniform = true
	st.UniformValue = values[0]

	for i := 0; i < n; i++ {
		if values[i] != st.UniformValue {
			st.Uniform = false
		}

		if !isPresent(i) {
			continue
		}

		if values[i] {
			st.TrueCount++
		} else {
			st.FalseCount++
		}

		if !haveLast || values[i] != last {
			runCount++
			last = values[i]
			haveLast = true
		}
	}

	if runCount == 0 {
		runCount = 1
	}

	st.NullCount = n - st.TrueCount - st.FalseCount
	st.AverageRunLen = (n / 8) / runCount
	if st.AverageRunLen == 0 {
		st.AverageRunLen = 1
	}

	return st
}
