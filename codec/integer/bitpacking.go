package integer

import (
	"encoding/binary"

	"github.com/strawboat/strawboat/bitpack"
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/sample"
	"github.com/strawboat/strawboat/stat"
)

// Bitpacking frame-of-references the column against its minimum and packs
// the offsets into fixed 128-lane blocks via the bitpack package. It only
// applies to exactly-4-byte integer kinds (i32/u32): bitpack.Pack operates
// on u32 lanes, and widening an 8-byte kind into u32 lanes would silently
// truncate data, so Applicable gates on sizeof(T). Applicable also requires
// a non-negative minimum, matching the source this was distilled from
// (compress_ratio refuses negative minimums outright): a negative min widens
// to a huge uint64 frame-of-reference base, which is wasted header space at
// best, so the codec declines rather than produce a technically-correct but
// pointless encoding.
//
// Wire shape: [min:4 bytes LE][bitpack.PackAll(values-min)].
type Bitpacking[T prim.Integer] struct{}

func (Bitpacking[T]) ID() format.CodecID { return format.CodecBitpacking }

func (Bitpacking[T]) Applicable(st stat.Integer[T]) bool {
	return st.Len > 0 && prim.Size[T]() == 4 && st.Min >= 0 && st.Len%bitpack.BlockSize == 0
}

func bitpackOffsets[T prim.Integer](values []T, min T) []uint32 {
	offsets := make([]uint32, len(values))
	minU := prim.Widen(min)
	for i, v := range values {
		offsets[i] = uint32(prim.Widen(v) - minU)
	}

	return offsets
}

func (Bitpacking[T]) encode(values []T) []byte {
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}

	offsets := bitpackOffsets(values, min)

	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(prim.Widen(min)))
	out = bitpack.PackAll(out, offsets)

	return out
}

func (b Bitpacking[T]) PredictedRatio(values []T, st stat.Integer[T], env Env[T]) float64 {
	elemSize := prim.Size[T]()
	ratio := sample.EstimateRatio(values, elemSize, env.sampleK(), env.sampleS(), env.rand(), func(sampled []T) (int, error) {
		return len(b.encode(sampled)), nil
	})

	return ratio
}

func (b Bitpacking[T]) Compress(values []T, _ stat.Integer[T], _ Env[T]) ([]byte, error) {
	return b.encode(values), nil
}

func (Bitpacking[T]) Decompress(payload []byte, out []T, _ Env[T]) error {
	if len(payload) < 4 {
		return errs.ErrTruncated
	}
	min := binary.LittleEndian.Uint32(payload)
	payload = payload[4:]

	offsets, err := bitpack.UnpackAll(payload, len(out))
	if err != nil {
		return err
	}

	for i, off := range offsets {
		out[i] = prim.Narrow[T](uint64(min + off))
	}

	return nil
}
