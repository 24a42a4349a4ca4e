// Package integer implements the type-specialized integer page codecs (C3):
// OneValue, RLE, Dict, Freq, Bitpacking, Delta and DeltaBitpacking, plus the
// generic-byte fallback wrapper shared with every other kind.
package integer

import (
	"math/rand"

	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// Env carries everything a codec needs beyond the values and stats it is
// given: the sampler's RNG and window sizes, the frequency codec's dominance
// threshold, and the two recursive sub-page encoders that Dict and Freq use
// to frame their nested payloads. The page package supplies the closures
// through policy.IntegerEnv; codecs
// in this package never import page themselves, which keeps page -> policy
// -> integer a one-way dependency chain.
type Env[T prim.Integer] struct {
	Rand          *rand.Rand
	SampleK       int
	SampleS       int
	FreqDominance float64

	// EncodeSubPage frames values (of the same type T) as a complete,
	// independently-decodable page, honoring forbidden. Used by Freq to
	// sub-encode its non-dominant residual values.
	EncodeSubPage func(values []T, forbidden format.Forbidden) ([]byte, error)

	// DecodeSubPage reads back a page written by EncodeSubPage, filling
	// exactly count values and reporting how many bytes of frame it
	// consumed so the caller can continue parsing past it.
	DecodeSubPage func(frame []byte, count int) (values []T, consumed int, err error)

	// EncodeIndexPage frames a u32 index vector as a complete page,
	// honoring forbidden. Used by Dict to sub-encode its index stream.
	EncodeIndexPage func(indices []uint32, forbidden format.Forbidden) ([]byte, error)

	// DecodeIndexPage reads back a page written by EncodeIndexPage.
	DecodeIndexPage func(frame []byte, count int) (indices []uint32, consumed int, err error)
}

func (e Env[T]) dominance() float64 {
	if e.FreqDominance > 0 {
		return e.FreqDominance
	}

	return DefaultFreqDominance
}

func (e Env[T]) sampleK() int {
	if e.SampleK > 0 {
		return e.SampleK
	}

	return defaultSampleK
}

func (e Env[T]) sampleS() int {
	if e.SampleS > 0 {
		return e.SampleS
	}

	return defaultSampleS
}

func (e Env[T]) rand() *rand.Rand {
	if e.Rand != nil {
		return e.Rand
	}

	return fallbackRand
}

// Codec is the C3 contract every integer codec implements. Applicable is
// checked before PredictedRatio/Compress are ever called; a codec that
// cannot represent the page (e.g. Bitpacking on a non-4-byte type) reports
// false unconditionally.
type Codec[T prim.Integer] interface {
	ID() format.CodecID
	Applicable(st stat.Integer[T]) bool
	PredictedRatio(values []T, st stat.Integer[T], env Env[T]) float64
	Compress(values []T, st stat.Integer[T], env Env[T]) ([]byte, error)
	Decompress(payload []byte, out []T, env Env[T]) error
}
