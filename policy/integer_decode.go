package policy

import (
	"github.com/strawboat/strawboat/codec/generic"
	cint "github.com/strawboat/strawboat/codec/integer"
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
)

// DecodeInteger dispatches a page payload to the codec named by id, filling
// out (len(out) == L). Generic ids go through the byte codec and a raw
// little-endian reinterpretation; specialized ids go through their codec's
// Decompress.
func DecodeInteger[T prim.Integer](id format.CodecID, payload []byte, out []T, env cint.Env[T]) error {
	if format.IsGeneric(id) {
		raw, err := generic.Decode(payload, id)
		if err != nil {
			return err
		}
		if len(raw) != len(out)*prim.Size[T]() {
			return errs.ErrSizeMismatch
		}
		prim.BytesToIntSlice(raw, out)

		return nil
	}

	for _, c := range integerCandidates[T]() {
		if c.ID() == id {
			return c.Decompress(payload, out, env)
		}
	}

	return errs.ErrUnknownCodec
}
