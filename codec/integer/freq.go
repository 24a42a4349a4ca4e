package integer

import (
	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/stat"
)

// Freq stores a single dominant storage value F, a bitmap marking which
// positions hold it, and the remaining values sub-encoded as their own page
// (Freq forbidden there, bounding the recursion to one extra level). Wire
// shape: [F:sizeof(T)][bitmap:ceil(L/8)][residual sub-page bytes].
type Freq[T prim.Integer] struct{}

func (Freq[T]) ID() format.CodecID { return format.CodecFreq }

func dominant[T comparable](values []T) (T, int) {
	counts := make(map[T]int, len(values))
	var best T
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}

	return best, bestCount
}

func (Freq[T]) Applicable(st stat.Integer[T]) bool {
	return st.Len > 0 && st.UniqueCount > 1
}

func bitmapBytes(n int) int { return (n + 7) / 8 }

func setBit(bm []byte, i int) { bm[i/8] |= 1 << uint(i%8) }

func getBit(bm []byte, i int) bool { return bm[i/8]&(1<<uint(i%8)) != 0 }

func (f Freq[T]) encode(values []T, env Env[T]) ([]byte, T, int, error) {
	F, count := dominant(values)

	bm := make([]byte, bitmapBytes(len(values)))
	residual := make([]T, 0, len(values)-count)
	for i, v := range values {
		if v == F {
			setBit(bm, i)
		} else {
			residual = append(residual, v)
		}
	}

	forbidden := format.NewForbidden(format.CodecFreq)
	sub, err := env.EncodeSubPage(residual, forbidden)
	if err != nil {
		return nil, F, 0, err
	}

	size := prim.Size[T]()
	out := make([]byte, size, size+len(bm)+len(sub))
	prim.IntBytes(out[:size], F)
	out = append(out, bm...)
	out = append(out, sub...)

	return out, F, count, nil
}

func (f Freq[T]) PredictedRatio(values []T, st stat.Integer[T], env Env[T]) float64 {
	payload, _, count, err := f.encode(values, env)
	if err != nil || len(payload) == 0 {
		return 1.0
	}

	if len(values) == 0 || float64(count)/float64(len(values)) < env.dominance() {
		return 0
	}

	return float64(st.TotalBytes) / float64(len(payload))
}

func (f Freq[T]) Compress(values []T, _ stat.Integer[T], env Env[T]) ([]byte, error) {
	payload, _, _, err := f.encode(values, env)
	return payload, err
}

func (Freq[T]) Decompress(payload []byte, out []T, env Env[T]) error {
	size := prim.Size[T]()
	if len(payload) < size {
		return errs.ErrTruncated
	}
	F := prim.IntFromBytes[T](payload[:size])
	payload = payload[size:]

	n := len(out)
	bmLen := bitmapBytes(n)
	if len(payload) < bmLen {
		return errs.ErrTruncated
	}
	bm := payload[:bmLen]
	payload = payload[bmLen:]

	residualCount := 0
	for i := 0; i < n; i++ {
		if !getBit(bm, i) {
			residualCount++
		}
	}

	residual, _, err := env.DecodeSubPage(payload, residualCount)
	if err != nil {
		return err
	}

	r := 0
	for i := 0; i < n; i++ {
		if getBit(bm, i) {
			out[i] = F
		} else {
			out[i] = residual[r]
			r++
		}
	}

	return nil
}
