package page

import (
	"github.com/strawboat/strawboat/policy"
	"github.com/strawboat/strawboat/stat"
)

// EncodeBooleanValues is EncodeIntegerValues' boolean twin. Boolean pages
// have no recursive sub-page codecs, so no Env needs wiring. present mirrors
// EncodeIntegerValues' parameter: nil means "everything set".
func EncodeBooleanValues(values []bool, present func(int) bool, opts policy.Options) ([]byte, error) {
	st := stat.CollectBoolean(values, present)

	id, payload, err := policy.SelectBoolean(values, st, opts)
	if err != nil {
		return nil, err
	}

	return AppendFrame(nil, id, len(values), payload), nil
}

// DecodeBooleanValues is DecodeIntegerValues' boolean twin.
func DecodeBooleanValues(frame []byte, count int, _ policy.Options) ([]bool, int, error) {
	id, payload, _, consumed, err := ReadFrame(frame)
	if err != nil {
		return nil, 0, err
	}

	out := make([]bool, count)
	if err := policy.DecodeBoolean(id, payload, out); err != nil {
		return nil, 0, err
	}

	return out, consumed, nil
}
