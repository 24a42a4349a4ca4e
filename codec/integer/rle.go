package integer

import (
	"encoding/binary"

	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// RLE stores runs of equal storage values as (value, run_length) pairs.
// Wire shape: {value:sizeof(T), run_len:u32 LE}*, read until L positions are
// filled -- no leading run count, per spec.md §4.3/§8 scenario 3.
type RLE[T prim.Integer] struct{}

func (RLE[T]) ID() format.CodecID { return format.CodecRLE }

func (RLE[T]) Applicable(st stat.Integer[T]) bool {
	return st.Len > 0
}

func (RLE[T]) PredictedRatio(values []T, st stat.Integer[T], _ Env[T]) float64 {
	size := prim.Size[T]()
	runs := st.Len / max(st.AverageRunLen, 1)
	if runs == 0 {
		runs = 1
	}

	estimated := runs * (size + 4)
	if estimated <= 0 {
		return 1.0
	}

	return float64(st.TotalBytes) / float64(estimated)
}

func (RLE[T]) Compress(values []T, _ stat.Integer[T], _ Env[T]) ([]byte, error) {
	var out []byte

	n := len(values)
	var vbuf [8]byte
	size := prim.Size[T]()

	i := 0
	for i < n {
		v := values[i]
		j := i + 1
		for j < n && values[j] == v {
			j++
		}

		prim.IntBytes(vbuf[:size], v)
		out = append(out, vbuf[:size]...)

		var lbuf [4]byte
		binary.LittleEndian.PutUint32(lbuf[:], uint32(j-i))
		out = append(out, lbuf[:]...)

		i = j
	}

	return out, nil
}

func (RLE[T]) Decompress(payload []byte, out []T, _ Env[T]) error {
	size := prim.Size[T]()

	pos := 0
	for pos < len(out) {
		if len(payload) < size+4 {
			return errs.ErrTruncated
		}

		v := prim.IntFromBytes[T](payload[:size])
		payload = payload[size:]

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
