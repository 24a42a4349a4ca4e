package page

import (
	cfloat "github.com/strawboat/strawboat/codec/float"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/policy"
	"github.com/strawboat/strawboat/stat"
)

// EncodeFloatValues is EncodeIntegerValues' float twin.
func EncodeFloatValues[T prim.Float](values []T, present func(int) bool, opts policy.Options) ([]byte, error) {
	st := stat.CollectFloat(values, present)
	env := floatEnv[T](opts)

	id, payload, err := policy.SelectFloat(values, st, opts, env)
	if err != nil {
		return nil, err
	}

	return AppendFrame(nil, id, len(values)*prim.Size[T](), payload), nil
}

// DecodeFloatValues is DecodeIntegerValues' float twin.
func DecodeFloatValues[T prim.Float](frame []byte, count int, opts policy.Options) ([]T, int, error) {
	id, payload, _, consumed, err := ReadFrame(frame)
	if err != nil {
		return nil, 0, err
	}

	out := make([]T, count)
	env := floatEnv[T](opts)
	if err := policy.DecodeFloat(id, payload, out, env); err != nil {
		return nil, 0, err
	}

	return out, consumed, nil
}

func floatEnv[T prim.Float](opts policy.Options) cfloat.Env[T] {
	return policy.FloatEnv[T](opts,
		func(values []T, forbidden format.Forbidden) ([]byte, error) {
			return EncodeFloatValues(values, nil, opts.Merge(forbidden))
		},
		func(frame []byte, count int) ([]T, int, error) {
			return DecodeFloatValues[T](frame, count, opts)
		},
		func(indices []uint32, forbidden format.Forbidden) ([]byte, error) {
			return EncodeIntegerValues(indices, nil, opts.Merge(forbidden))
		},
		func(frame []byte, count int) ([]uint32, int, error) {
			return DecodeIntegerValues[uint32](frame, count, opts)
		},
	)
}
