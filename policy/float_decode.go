package policy

import (
	cfloat "github.com/strawboat/strawboat/codec/float"
	"github.com/strawboat/strawboat/codec/generic"
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
)

// DecodeFloat is DecodeInteger's float twin.
func DecodeFloat[T prim.Float](id format.CodecID, payload []byte, out []T, env cfloat.Env[T]) error {
	if format.IsGeneric(id) {
		raw, err := generic.Decode(payload, id)
		if err != nil {
			return err
		}
		if len(raw) != len(out)*prim.Size[T]() {
			return errs.ErrSizeMismatch
		}
		prim.BytesToFloatSlice(raw, out)

		return nil
	}

	for _, c := range floatCandidates[T]() {
		if c.ID() == id {
			return c.Decompress(payload, out, env)
		}
	}

	return errs.ErrUnknownCodec
}
