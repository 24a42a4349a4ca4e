package float

import (
	"encoding/binary"

	"github.com/strawboat/strawboat/dictionary"
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// Dict is the float twin of codec/integer's Dict. Distinctness is judged on
// the IEEE-754 bit pattern (prim.FloatBits), not Go's == on T, so NaN
// payloads and ±0 are handled per §4.4's total-order wrapper rather than
// being silently merged or split by float equality quirks. Wire shape:
// [index sub-page bytes][dict_card:u32 LE]{value:sizeof(T)}*dict_card.
type Dict[T prim.Float] struct{}

func (Dict[T]) ID() format.CodecID { return format.CodecDict }

func (Dict[T]) Applicable(st stat.Float[T]) bool {
	return st.Len > 0 && st.UniqueCount > 0 && st.UniqueCount*3 < st.Len
}

func (d Dict[T]) build(values []T) (indices []uint32, dict []uint64) {
	eng := dictionary.New[uint64]()
	for _, v := range values {
		eng.Push(prim.FloatBits(v))
	}

	return eng.TakeIndices(), eng.GetSets()
}

func (d Dict[T]) encode(values []T, env Env[T]) ([]byte, error) {
	indices, dict := d.build(values)

	forbidden := format.NewForbidden(format.CodecDict)
	indexPage, err := env.EncodeIndexPage(indices, forbidden)
	if err != nil {
		return nil, err
	}

	size := prim.Size[T]()
	out := make([]byte, 0, len(indexPage)+4+len(dict)*size)
	out = append(out, indexPage...)

	var cbuf [4]byte
	binary.LittleEndian.PutUint32(cbuf[:], uint32(len(dict)))
	out = append(out, cbuf[:]...)

	var vbuf [8]byte
	for _, bits := range dict {
		v := prim.FloatFromBits[T](bits)
		prim.FloatBytes(vbuf[:size], v)
		out = append(out, vbuf[:size]...)
	}

	return out, nil
}

func (d Dict[T]) PredictedRatio(values []T, st stat.Float[T], env Env[T]) float64 {
	payload, err := d.encode(values, env)
	if err != nil || len(payload) == 0 {
		return 1.0
	}

	return float64(st.TotalBytes) / float64(len(payload))
}

func (d Dict[T]) Compress(values []T, _ stat.Float[T], env Env[T]) ([]byte, error) {
	return d.encode(values, env)
}

func (Dict[T]) Decompress(payload []byte, out []T, env Env[T]) error {
	indices, consumed, err := env.DecodeIndexPage(payload, len(out))
	if err != nil {
		return err
	}
	rest := payload[consumed:]

	if len(rest) < 4 {
		return errs.ErrTruncated
	}
	card := binary.LittleEndian.Uint32(rest)
	rest = rest[4:]

	size := prim.Size[T]()
	dict := make([]T, card)
	for i := range dict {
		if len(rest) < size {
			return errs.ErrTruncated
		}
		dict[i] = prim.FloatFromBytes[T](rest[:size])
		rest = rest[size:]
	}

	for i, idx := range indices {
		if int(idx) >= len(dict) {
			return errs.ErrInvalidPayload
		}
		out[i] = dict[idx]
	}

	return nil
}
