package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapCodec_Nil(t *testing.T) {
	require.NoError(t, WrapCodec(1, "decode", nil))
}

func TestWrapCodec_UnwrapsToOriginal(t *testing.T) {
	wrapped := WrapCodec(14, "decode", ErrInvalidPayload)
	require.Error(t, wrapped)
	require.True(t, errors.Is(wrapped, ErrInvalidPayload))
	require.Contains(t, wrapped.Error(), "codec 14")
	require.Contains(t, wrapped.Error(), "decode")
}

func TestWrapIO_Nil(t *testing.T) {
	require.NoError(t, WrapIO(nil))
}

func TestWrapIO_UnwrapsToOriginal(t *testing.T) {
	underlying := errors.New("short read")
	wrapped := WrapIO(underlying)
	require.Error(t, wrapped)
	require.True(t, errors.Is(wrapped, underlying))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrTruncated, ErrUnknownCodec, ErrInvalidPayload, ErrSizeMismatch, ErrForbiddenCodec}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v should not be %v", a, b)
		}
	}
}
