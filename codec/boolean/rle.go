package boolean

import (
	"encoding/binary"

	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/stat"
)

// RLE stores runs of equal bits as (value, run_length) pairs. Wire shape:
// {value:u8, run_len:u32 LE}*, read until L bits are filled -- no leading
// run count, per spec.md §4.5/§8 scenario 3's integer analogue.
type RLE struct{}

func (RLE) ID() format.CodecID { return format.CodecRLE }

func (RLE) Applicable(st stat.Boolean) bool {
	return st.Len > 0
}

func (RLE) encode(values []bool) []byte {
	var out []byte

	n := len(values)
	i := 0
	for i < n {
		v := values[i]
		j := i + 1
		for j < n && values[j] == v {
			j++
		}

		vb := byte(0)
		if v {
			vb = 1
		}
		out = append(out, vb)

		var lbuf [4]byte
		binary.LittleEndian.PutUint32(lbuf[:], uint32(j-i))
		out = append(out, lbuf[:]...)

		i = j
	}

	return out
}

func (RLE) PredictedRatio(values []bool, st stat.Boolean) float64 {
	runs := st.Len / max(st.AverageRunLen*8, 1)
	if runs == 0 {
		runs = 1
	}

	estimated := runs * 5
	uncompressed := bitmapBytes(st.Len)

	return float64(uncompressed) / float64(estimated)
}

func (RLE) Compress(values []bool, _ stat.Boolean) ([]byte, error) {
	return RLE{}.encode(values), nil
}

func (RLE) Decompress(payload []byte, out []bool) error {
	pos := 0
	for pos < len(out) {
		if len(payload) < 5 {
			return errs.ErrTruncated
		}

		v := payload[0] != 0
		payload = payload[1:]

		runLen := binary.LittleEndian.Uint32(payload[:4])
		payload = payload[4:]
		if runLen == 0 {
			return errs.ErrInvalidPayload
		}

		for k := uint32(0); k < runLen; k++ {
			if pos >= len(out) {
				return errs.ErrSizeMismatch
			}
			out[pos] = v
			pos++
		}
	}

	if pos != len(out) {
		return errs.ErrSizeMismatch
	}

	return nil
}
