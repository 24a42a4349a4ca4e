package integer

import (
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// OneValue stores a single repeated storage value for the whole page: a
// constant column, or a column whose only variation is which slots are
// null (null slots still carry the same storage value as everything else,
// per stat.Integer's UniqueCount convention).
type OneValue[T prim.Integer] struct{}

func (OneValue[T]) ID() format.CodecID { return format.CodecOneValue }

func (OneValue[T]) Applicable(st stat.Integer[T]) bool {
	return st.Len > 0 && st.UniqueCount == 1
}

func (OneValue[T]) PredictedRatio(values []T, st stat.Integer[T], _ Env[T]) float64 {
	size := prim.Size[T]()
	if size == 0 {
		return 1.0
	}

	return float64(st.TotalBytes) / float64(size)
}

func (OneValue[T]) Compress(values []T, _ stat.Integer[T], _ Env[T]) ([]byte, error) {
	size := prim.Size[T]()
	out := make([]byte, size)
	if len(values) > 0 {
		prim.IntBytes(out, values[0])
	}

	return out, nil
}

func (OneValue[T]) Decompress(payload []byte, out []T, _ Env[T]) error {
	size := prim.Size[T]()
	if len(payload) < size {
		return errs.ErrTruncated
	}

	v := prim.IntFromBytes[T](payload[:size])
	for i := range out {
		out[i] = v
	}

	return nil
}
