package integer

import (
	"github.com/strawboat/strawboat/bitpack"
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/internal/varint"
	"github.com/strawboat/strawboat/sample"
	"github.com/strawboat/strawboat/stat"
)

// DeltaBitpacking zigzags the same first-difference stream Delta computes,
// then bit-packs the zigzagged u32 deltas in 128-lane blocks. Gated to
// exactly-4-byte kinds for the same reason as Bitpacking.
// Wire shape: [first:4 bytes LE][bitpack.PackAll(zigzag(deltas))].
type DeltaBitpacking[T prim.Integer] struct{}

func (DeltaBitpacking[T]) ID() format.CodecID { return format.CodecDeltaBitpacking }

func (DeltaBitpacking[T]) Applicable(st stat.Integer[T]) bool {
	// DeltaBitpacking bit-packs L-1 deltas, so the block-size constraint
	// (§4.3) applies to L-1, the length of the stream actually packed.
	return st.Len > 0 && prim.Size[T]() == 4 && (st.Len-1)%bitpack.BlockSize == 0
}

func (DeltaBitpacking[T]) encode(values []T) []byte {
	out := make([]byte, 4)
	prim.IntBytes(out[:4], values[0])

	zz := make([]uint32, len(values)-1)
	prev := int64(prim.Widen(values[0]))
	for i, v := range values[1:] {
		cur := int64(prim.Widen(v))
		zz[i] = uint32(varint.ZigZagEncode(cur - prev))
		prev = cur
	}

	out = bitpack.PackAll(out, zz)

	return out
}

func (c DeltaBitpacking[T]) PredictedRatio(values []T, st stat.Integer[T], env Env[T]) float64 {
	elemSize := prim.Size[T]()
	return sample.EstimateRatio(values, elemSize, env.sampleK(), env.sampleS(), env.rand(), func(sampled []T) (int, error) {
		if len(sampled) == 0 {
			return 0, errs.ErrInvalidPayload
		}
		return len(c.encode(sampled)), nil
	})
}

func (c DeltaBitpacking[T]) Compress(values []T, _ stat.Integer[T], _ Env[T]) ([]byte, error) {
	return c.encode(values), nil
}

func (DeltaBitpacking[T]) Decompress(payload []byte, out []T, _ Env[T]) error {
	if len(payload) < 4 {
		return errs.ErrTruncated
	}

	first := prim.IntFromBytes[T](payload[:4])
	payload = payload[4:]
	if len(out) == 0 {
		return nil
	}
	out[0] = first

	zz, err := bitpack.UnpackAll(payload, len(out)-1)
	if err != nil {
		return err
	}

	prev := int64(prim.Widen(first))
	for i, z := range zz {
		prev += varint.ZigZagDecode(uint64(z))
		out[i+1] = prim.Narrow[T](uint64(prev))
	}

	return nil
}
