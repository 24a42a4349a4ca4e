package policy

import (
	"github.com/strawboat/strawboat/codec/generic"
	cint "github.com/strawboat/strawboat/codec/integer"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// integerCandidates lists the specialized codecs in the fixed tie-break
// order §4.6 requires: cheapest/most-specific first, so that when two
// codecs predict the exact same ratio the simpler one wins.
func integerCandidates[T prim.Integer]() []cint.Codec[T] {
	return []cint.Codec[T]{
		cint.OneValue[T]{},
		cint.Delta[T]{},
		cint.Freq[T]{},
		cint.Dict[T]{},
		cint.RLE[T]{},
		cint.Bitpacking[T]{},
		cint.DeltaBitpacking[T]{},
	}
}

// SelectInteger picks the best codec id and its already-encoded payload for
// an integer column.
func SelectInteger[T prim.Integer](values []T, st stat.Integer[T], opts Options, env cint.Env[T]) (format.CodecID, []byte, error) {
	raw := prim.IntSliceBytes(values)
	defaultID, defaultPayload, defaultRatio := generic.Best(raw, opts.forbidden)

	var bestCodec cint.Codec[T]
	bestRatio := 0.0

	for _, c := range integerCandidates[T]() {
		if opts.forbids(c.ID()) || !c.Applicable(st) {
			continue
		}

		ratio := c.PredictedRatio(values, st, env)
		if bestCodec == nil || ratio > bestRatio {
			bestCodec = c
			bestRatio = ratio
		}
	}

	if bestCodec == nil || bestRatio <= defaultRatio*opts.ratioThreshold {
		return defaultID, defaultPayload, nil
	}

	payload, err := bestCodec.Compress(values, st, env)
	if err != nil {
		return defaultID, defaultPayload, nil
	}

	return bestCodec.ID(), payload, nil
}

// IntegerEnv builds the Env a SelectInteger/codec call needs from Options,
// wiring recursive sub-page closures that forbid the codec currently being
// evaluated from choosing itself again.
func IntegerEnv[T prim.Integer](opts Options, encodeSub func([]T, format.Forbidden) ([]byte, error), decodeSub func([]byte, int) ([]T, int, error), encodeIdx func([]uint32, format.Forbidden) ([]byte, error), decodeIdx func([]byte, int) ([]uint32, int, error)) cint.Env[T] {
	return cint.Env[T]{
		Rand:            opts.rand,
		SampleK:         opts.sampleK,
		SampleS:         opts.sampleS,
		FreqDominance:   opts.freqDominance,
		EncodeSubPage:   encodeSub,
		DecodeSubPage:   decodeSub,
		EncodeIndexPage: encodeIdx,
		DecodeIndexPage: decodeIdx,
	}
}
