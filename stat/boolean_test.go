package stat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectBoolean_Empty(t *testing.T) {
	st := CollectBoolean(nil, nil)
	require.Equal(t, 0, st.Len)
}

func TestCollectBoolean_Uniform(t *testing.T) {
	values := make([]bool, 10)
	st := CollectBoolean(values, nil)

	require.True(t, st.Uniform)
	require.False(t, st.UniformValue)
	require.Equal(t, 0, st.TrueCount)
	require.Equal(t, 10, st.FalseCount)
}

func TestCollectBoolean_UniformAllTrue(t *testing.T) {
	values := []bool{true, true, true}
	st := CollectBoolean(values, nil)

	require.True(t, st.Uniform)
	require.True(t, st.UniformValue)
}

func TestCollectBoolean_NotUniform(t *testing.T) {
	values := []bool{true, false, true}
	st := CollectBoolean(values, nil)
	require.False(t, st.Uniform)
}

func TestCollectBoolean_NullSlotCountsTowardUniform(t *testing.T) {
	values := []bool{true, true, false}
	present := func(i int) bool { return i != 2 }
	st := CollectBoolean(values, present)

	require.False(t, st.Uniform, "the null slot's storage bit (false) breaks uniformity even though it's not logically set")
	require.Equal(t, 2, st.TrueCount)
	require.Equal(t, 0, st.FalseCount)
	require.Equal(t, 1, st.NullCount)
}

func TestCollectBoolean_Counts(t *testing.T) {
	values := []bool{true, false, true, true, false}
	st := CollectBoolean(values, nil)

	require.Equal(t, 3, st.TrueCount)
	require.Equal(t, 2, st.FalseCount)
	require.Equal(t, 0, st.NullCount)
}
