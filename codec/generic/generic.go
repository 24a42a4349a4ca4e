// Package generic adapts the compress package's byte-oriented Codec
// implementations (C2: None/LZ4/Zstd/S2-as-Snappy) into the "default
// candidate" every page type-specialized selector competes against. It
// knows nothing about T: every caller first serializes its column to a flat
// little-endian byte buffer (internal/prim's *SliceBytes helpers) and hands
// it here.
package generic

import (
	"github.com/strawboat/strawboat/compress"
	"github.com/strawboat/strawboat/format"
)

// candidateOrder is the fixed tie-break order among generic codecs: prefer
// the one that actually shrank the data the most, falling back toward
// cheaper/safer options in this order on exact ties.
var candidateOrder = []format.CodecID{format.CodecZstd, format.CodecLZ4, format.CodecSnappy, format.CodecNone}

// Best runs raw through every generic codec not in forbidden and returns the
// id/payload/ratio of whichever produced the smallest output. When at least
// one candidate is allowed and encodes, the returned id is never forbidden.
// When every candidate is forbidden or fails, Best returns CodecNone and the
// raw bytes even if CodecNone itself is in forbidden.
func Best(raw []byte, forbidden format.Forbidden) (format.CodecID, []byte, float64) {
	var bestID format.CodecID
	var bestPayload []byte
	haveBest := false

	for _, id := range candidateOrder {
		if forbidden.Has(id) {
			continue
		}

		payload, err := Encode(raw, id)
		if err != nil {
			continue
		}

		if !haveBest || len(payload) < len(bestPayload) {
			bestID = id
			bestPayload = payload
			haveBest = true
		}
	}

	if !haveBest {
		// Every candidate was either forbidden or failed to encode. This
		// should not happen in ordinary operation (a caller forbidding
		// every generic codec has left itself no fallback at all), but
		// CodecNone's Compress is a pure copy that cannot itself fail, so
		// it is the last-resort floor: returning a decodable page beats
		// returning nothing.
		bestID = format.CodecNone
		bestPayload, _ = Encode(raw, format.CodecNone)
	}

	ratio := 1.0
	if len(bestPayload) > 0 {
		ratio = float64(len(raw)) / float64(len(bestPayload))
	}

	return bestID, bestPayload, ratio
}

// Encode compresses raw with the generic codec named by id.
func Encode(raw []byte, id format.CodecID) ([]byte, error) {
	c, err := compress.CreateCodec(id, "page")
	if err != nil {
		return nil, err
	}

	return c.Compress(raw)
}

// Decode reverses Encode.
func Decode(payload []byte, id format.CodecID) ([]byte, error) {
	c, err := compress.CreateCodec(id, "page")
	if err != nil {
		return nil, err
	}

	return c.Decompress(payload)
}
