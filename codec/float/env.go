// Package float implements the type-specialized floating-point page codecs
// (C4): OneValue, Dict and Freq. Floats get no Bitpacking/Delta/RLE variant
// in this design -- the spec's ratio model for those assumes a dense integer
// domain, and floats already have Dict/Freq/generic fallback to fall back
// on, consistent with the base spec listing only these three for the kind.
package float

import (
	"math/rand"

	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// Env mirrors codec/integer.Env: the RNG, the frequency codec's dominance
// threshold and the two recursive sub-page encoders Dict and Freq need. It
// has no sampler window fields (SampleK/SampleS), and no float codec here
// samples, so Rand is carried only for symmetry with the integer Env.
type Env[T prim.Float] struct {
	Rand          *rand.Rand
	FreqDominance float64

	EncodeSubPage func(values []T, forbidden format.Forbidden) ([]byte, error)
	DecodeSubPage func(frame []byte, count int) (values []T, consumed int, err error)

	EncodeIndexPage func(indices []uint32, forbidden format.Forbidden) ([]byte, error)
	DecodeIndexPage func(frame []byte, count int) (indices []uint32, consumed int, err error)
}

func (e Env[T]) dominance() float64 {
	if e.FreqDominance > 0 {
		return e.FreqDominance
	}

	return DefaultFreqDominance
}

// Codec is the C4 contract every float codec implements.
type Codec[T prim.Float] interface {
	ID() format.CodecID
	Applicable(st stat.Float[T]) bool
	PredictedRatio(values []T, st stat.Float[T], env Env[T]) float64
	Compress(values []T, st stat.Float[T], env Env[T]) ([]byte, error)
	Decompress(payload []byte, out []T, env Env[T]) error
}
