package float

import (
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// OneValue is the float twin of codec/integer's OneValue: applicable only
// when every storage slot (null or not) carries the same bit pattern.
type OneValue[T prim.Float] struct{}

func (OneValue[T]) ID() format.CodecID { return format.CodecOneValue }

func (OneValue[T]) Applicable(st stat.Float[T]) bool {
	return st.Len > 0 && st.UniqueCount == 1
}

func (OneValue[T]) PredictedRatio(values []T, st stat.Float[T], _ Env[T]) float64 {
	size := prim.Size[T]()
	if size == 0 {
		return 1.0
	}

	return float64(st.TotalBytes) / float64(size)
}

func (OneValue[T]) Compress(values []T, _ stat.Float[T], _ Env[T]) ([]byte, error) {
	size := prim.Size[T]()
	out := make([]byte, size)
	if len(values) > 0 {
		prim.FloatBytes(out, values[0])
	}

	return out, nil
}

func (OneValue[T]) Decompress(payload []byte, out []T, _ Env[T]) error {
	size := prim.Size[T]()
	if len(payload) < size {
		return errs.ErrTruncated
	}

	v := prim.FloatFromBytes[T](payload[:size])
	for i := range out {
		out[i] = v
	}

	return nil
}
