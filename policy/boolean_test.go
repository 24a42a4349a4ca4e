package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/stat"
)

func TestSelectBoolean_UniformPicksOneValue(t *testing.T) {
	values := []bool{true, true, true, true, true}
	opts := NewOptions()
	st := stat.CollectBoolean(values, nil)

	id, payload, err := SelectBoolean(values, st, opts)
	require.NoError(t, err)
	require.Equal(t, format.CodecOneValue, id)

	out := make([]bool, len(values))
	require.NoError(t, DecodeBoolean(id, payload, out))
	require.Equal(t, values, out)
}

func TestSelectBoolean_RunsPickRLE(t *testing.T) {
	values := make([]bool, 3*1024)
	for i := range values {
		values[i] = i < 1024 || i >= 2*1024
	}
	opts := NewOptions()
	st := stat.CollectBoolean(values, nil)

	id, payload, err := SelectBoolean(values, st, opts)
	require.NoError(t, err)
	require.Equal(t, format.CodecRLE, id)

	out := make([]bool, len(values))
	require.NoError(t, DecodeBoolean(id, payload, out))
	require.Equal(t, values, out)
}

func TestSelectBoolean_AlternatingFallsBackToGeneric(t *testing.T) {
	values := make([]bool, 64)
	for i := range values {
		values[i] = i%2 == 0
	}
	opts := NewOptions()
	st := stat.CollectBoolean(values, nil)

	id, payload, err := SelectBoolean(values, st, opts)
	require.NoError(t, err)
	require.True(t, format.IsGeneric(id))

	out := make([]bool, len(values))
	require.NoError(t, DecodeBoolean(id, payload, out))
	require.Equal(t, values, out)
}

func TestSelectBoolean_RespectsForbidden(t *testing.T) {
	values := []bool{true, true, true, true}
	opts := NewOptions(WithForbidden(format.NewForbidden(format.CodecOneValue, format.CodecRLE)))
	st := stat.CollectBoolean(values, nil)

	id, _, err := SelectBoolean(values, st, opts)
	require.NoError(t, err)
	require.True(t, format.IsGeneric(id))
}

func TestDecodeBoolean_UnknownCodecErrors(t *testing.T) {
	out := make([]bool, 4)
	err := DecodeBoolean(format.CodecID(250), []byte{1, 2, 3}, out)
	require.ErrorIs(t, err, errs.ErrUnknownCodec)
}

func TestPackUnpackBits_RoundTrip(t *testing.T) {
	values := []bool{true, false, true, true, false, false, true, false, true}
	raw := packBits(values)

	out := make([]bool, len(values))
	unpackBits(raw, out)
	require.Equal(t, values, out)
}
