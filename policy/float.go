package policy

import (
	cfloat "github.com/strawboat/strawboat/codec/float"
	"github.com/strawboat/strawboat/codec/generic"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

func floatCandidates[T prim.Float]() []cfloat.Codec[T] {
	return []cfloat.Codec[T]{
		cfloat.OneValue[T]{},
		cfloat.Dict[T]{},
		cfloat.Freq[T]{},
	}
}

// SelectFloat is SelectInteger's float twin.
func SelectFloat[T prim.Float](values []T, st stat.Float[T], opts Options, env cfloat.Env[T]) (format.CodecID, []byte, error) {
	raw := prim.FloatSliceBytes(values)
	defaultID, defaultPayload, defaultRatio := generic.Best(raw, opts.forbidden)

	var bestCodec cfloat.Codec[T]
	bestRatio := 0.0

	for _, c := range floatCandidates[T]() {
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

// FloatEnv builds the Env a SelectFloat/codec call needs from Options.
func FloatEnv[T prim.Float](opts Options, encodeSub func([]T, format.Forbidden) ([]byte, error), decodeSub func([]byte, int) ([]T, int, error), encodeIdx func([]uint32, format.Forbidden) ([]byte, error), decodeIdx func([]byte, int) ([]uint32, int, error)) cfloat.Env[T] {
	return cfloat.Env[T]{
		Rand:            opts.rand,
		FreqDominance:   opts.freqDominance,
		EncodeSubPage:   encodeSub,
		DecodeSubPage:   decodeSub,
		EncodeIndexPage: encodeIdx,
		DecodeIndexPage: decodeIdx,
	}
}
