package policy

import (
	cbool "github.com/strawboat/strawboat/codec/boolean"
	"github.com/strawboat/strawboat/codec/generic"
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/stat"
)

func booleanCandidates() []cbool.Codec {
	return []cbool.Codec{cbool.OneValue{}, cbool.RLE{}}
}

// packBits turns a []bool into the C9-style bitmap the generic byte codecs
// compress, one bit per element, LSB-first within each byte.
func packBits(values []bool) []byte {
	out := make([]byte, (len(values)+7)/8)
	for i, v := range values {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}

	return out
}

func unpackBits(raw []byte, out []bool) {
	for i := range out {
		out[i] = raw[i/8]&(1<<uint(i%8)) != 0
	}
}

// SelectBoolean is SelectInteger's boolean twin. Booleans have no recursive
// sub-page codecs, so no Env is needed.
func SelectBoolean(values []bool, st stat.Boolean, opts Options) (format.CodecID, []byte, error) {
	raw := packBits(values)
	defaultID, defaultPayload, defaultRatio := generic.Best(raw, opts.forbidden)

	var bestCodec cbool.Codec
	bestRatio := 0.0

	for _, c := range booleanCandidates() {
		if opts.forbids(c.ID()) || !c.Applicable(st) {
			continue
		}

		ratio := c.PredictedRatio(values, st)
		if bestCodec == nil || ratio > bestRatio {
			bestCodec = c
			bestRatio = ratio
		}
	}

	if bestCodec == nil || bestRatio <= defaultRatio*opts.ratioThreshold {
		return defaultID, defaultPayload, nil
	}

	payload, err := bestCodec.Compress(values, st)
	if err != nil {
		return defaultID, defaultPayload, nil
	}

	return bestCodec.ID(), payload, nil
}

// DecodeBoolean dispatches payload to the codec named by id.
func DecodeBoolean(id format.CodecID, payload []byte, out []bool) error {
	if format.IsGeneric(id) {
		raw, err := generic.Decode(payload, id)
		if err != nil {
			return err
		}
		if len(raw) != (len(out)+7)/8 {
			return errs.ErrSizeMismatch
		}
		unpackBits(raw, out)

		return nil
	}

	for _, c := range booleanCandidates() {
		if c.ID() == id {
			return c.Decompress(payload, out)
		}
	}

	return errs.ErrUnknownCodec
}
