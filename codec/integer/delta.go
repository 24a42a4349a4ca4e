package integer

import (
	"encoding/binary"

	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/internal/varint"
	"github.com/strawboat/strawboat/sample"
	"github.com/strawboat/strawboat/stat"
)

// Delta stores the first value raw and every following value as a
// zigzag-varint-encoded first difference from its predecessor. Deltas are
// computed in wrapping int64 arithmetic (every supported Integer kind fits
// in 64 bits); decode adds them back with the same wrapping, so the round
// trip is exact across the whole range of every kind, uint64 included.
// Wire shape: [first:sizeof(T)]{delta:varint}*(L-1).
type Delta[T prim.Integer] struct{}

func (Delta[T]) ID() format.CodecID { return format.CodecDelta }

func (Delta[T]) Applicable(st stat.Integer[T]) bool {
	return st.Len > 0
}

func (Delta[T]) encode(values []T) []byte {
	size := prim.Size[T]()
	out := make([]byte, size)
	prim.IntBytes(out, values[0])

	prev := int64(prim.Widen(values[0]))
	for _, v := range values[1:] {
		cur := int64(prim.Widen(v))
		out = varint.Put(out, varint.ZigZagEncode(cur-prev))
		prev = cur
	}

	return out
}

func (d Delta[T]) PredictedRatio(values []T, st stat.Integer[T], env Env[T]) float64 {
	elemSize := prim.Size[T]()
	return sample.EstimateRatio(values, elemSize, env.sampleK(), env.sampleS(), env.rand(), func(sampled []T) (int, error) {
		return len(d.encode(sampled)), nil
	})
}

func (d Delta[T]) Compress(values []T, _ stat.Integer[T], _ Env[T]) ([]byte, error) {
	return d.encode(values), nil
}

func (Delta[T]) Decompress(payload []byte, out []T, _ Env[T]) error {
	size := prim.Size[T]()
	if len(payload) < size {
		return errs.ErrTruncated
	}

	first := prim.IntFromBytes[T](payload[:size])
	payload = payload[size:]
	if len(out) == 0 {
		return nil
	}
	out[0] = first

	prev := int64(prim.Widen(first))
	for i := 1; i < len(out); i++ {
		zz, n := binary.Uvarint(payload)
		if n <= 0 {
			return errs.ErrTruncated
		}
		payload = payload[n:]

		prev += varint.ZigZagDecode(zz)
		out[i] = prim.Narrow[T](uint64(prev))
	}

	return nil
}
