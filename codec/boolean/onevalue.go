package boolean

import (
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/stat"
)

// OneValue stores a single repeated bit for the whole page.
type OneValue struct{}

func (OneValue) ID() format.CodecID { return format.CodecOneValue }

func (OneValue) Applicable(st stat.Boolean) bool {
	return st.Len > 0 && st.Uniform
}

func (OneValue) PredictedRatio(values []bool, st stat.Boolean) float64 {
	if st.Len == 0 {
		return 1.0
	}

	return float64(st.Len)
}

func (OneValue) Compress(values []bool, st stat.Boolean) ([]byte, error) {
	out := make([]byte, 1)
	if st.UniformValue {
		out[0] = 1
	}

	return out, nil
}

func (OneValue) Decompress(payload []byte, out []bool) error {
	if len(payload) < 1 {
		return errs.ErrTruncated
	}

	v := payload[0] != 0
	for i := range out {
		out[i] = v
	}

	return nil
}
