// Package boolean implements the type-specialized boolean page codecs (C5):
// OneValue and RLE. Booleans have only two storage values, so Dict/Freq
// would be redundant with RLE/OneValue and are intentionally not offered.
package boolean

import (
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/stat"
)

// Codec is the C5 contract every boolean codec implements.
type Codec interface {
	ID() format.CodecID
	Applicable(st stat.Boolean) bool
	PredictedRatio(values []bool, st stat.Boolean) float64
	Compress(values []bool, st stat.Boolean) ([]byte, error)
	Decompress(payload []byte, out []bool) error
}
