package page

import (
	"github.com/strawboat/strawboat/codec/integer"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/policy"
	"github.com/strawboat/strawboat/stat"
)

// EncodeIntegerValues selects and frames a complete, independently
// decodable page for values: [codec][sizes][payload]. It is the function
// Dict and Freq's recursive sub-page closures call into (instantiated at
// T=uint32 for Dict's index stream), so it never itself takes a validity
// bitmap -- that coupling lives one layer up, in EncodeIntegerColumn.
func EncodeIntegerValues[T prim.Integer](values []T, present func(int) bool, opts policy.Options) ([]byte, error) {
	st := stat.CollectInteger(values, present)
	env := integerEnv[T](opts)

	id, payload, err := policy.SelectInteger(values, st, opts, env)
	if err != nil {
		return nil, err
	}

	return AppendFrame(nil, id, len(values)*prim.Size[T](), payload), nil
}

// DecodeIntegerValues reverses EncodeIntegerValues, reading exactly one
// frame out of frame and returning the bytes it consumed.
func DecodeIntegerValues[T prim.Integer](frame []byte, count int, opts policy.Options) ([]T, int, error) {
	id, payload, _, consumed, err := ReadFrame(frame)
	if err != nil {
		return nil, 0, err
	}

	out := make([]T, count)
	env := integerEnv[T](opts)
	if err := policy.DecodeInteger(id, payload, out, env); err != nil {
		return nil, 0, err
	}

	return out, consumed, nil
}

func integerEnv[T prim.Integer](opts policy.Options) integer.Env[T] {
	return policy.IntegerEnv[T](opts,
		func(values []T, forbidden format.Forbidden) ([]byte, error) {
			return EncodeIntegerValues(values, nil, opts.Merge(forbidden))
		},
		func(frame []byte, count int) ([]T, int, error) {
			return DecodeIntegerValues[T](frame, count, opts)
		},
		func(indices []uint32, forbidden format.Forbidden) ([]byte, error) {
			return EncodeIntegerValues(indices, nil, opts.Merge(forbidden))
		},
		func(frame []byte, count int) ([]uint32, int, error) {
			return DecodeIntegerValues[uint32](frame, count, opts)
		},
	)
}
