// Package bitpack implements the fixed-block bit packer used by the
// Bitpacking and DeltaBitpacking integer codecs.
//
// No example in the retrieval pack ships a ready-made bit-packer (the only
// candidate, Akron/fastpfor-go, is present as a manifest stub with no
// source), so this is a hand-rolled implementation; see DESIGN.md.
package bitpack

import (
	"math/bits"

	"github.com/strawboat/strawboat/errs"
)

// BlockSize is the number of lanes packed together under a single bit width,
// B = 128 u32 lanes as required by the wire format.
const BlockSize = 128

// WidthFor returns the minimum number of bits needed to represent every
// value in block as an unsigned integer, in [0, 32].
func WidthFor(block []uint32) int {
	var max uint32
	for _, v := range block {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 0
	}

	return bits.Len32(max)
}

// Pack appends a [width:u8][packed bits, padded to bytes] block to dst and
// returns the extended slice. len(block) must be <= BlockSize; a final block
// shorter than BlockSize is packed as is, without zero padding (PackAll does
// this), and the caller tracks the true count out of band.
func Pack(dst []byte, block []uint32, width int) []byte {
	dst = append(dst, byte(width))
	if width == 0 {
		return dst
	}

	packedBits := len(block) * width
	packedBytes := (packedBits + 7) / 8
	start := len(dst)
	dst = append(dst, make([]byte, packedBytes)...)
	out := dst[start:]

	var acc uint64
	var accBits int
	pos := 0
	for _, v := range block {
		acc |= uint64(v) << uint(accBits)
		accBits += width
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	if accBits > 0 {
		out[pos] = byte(acc)
	}

	return dst
}

// Unpack reads a [width:u8][packed bits] block written by Pack, with count
// logical lanes (count <= BlockSize), and returns the decoded values plus
// the number of bytes consumed from src.
func Unpack(src []byte, count int) ([]uint32, int, error) {
	if len(src) < 1 {
		return nil, 0, errs.ErrTruncated
	}
	width := int(src[0])
	if width > 32 {
		return nil, 0, errs.ErrInvalidPayload
	}

	values := make([]uint32, count)
	if width == 0 {
		return values, 1, nil
	}

	packedBits := count * width
	packedBytes := (packedBits + 7) / 8
	if len(src) < 1+packedBytes {
		return nil, 0, errs.ErrTruncated
	}
	in := src[1 : 1+packedBytes]

	var acc uint64
	var accBits int
	pos := 0
	mask := uint64(1)<<uint(width) - 1
	for i := range count {
		for accBits < width {
			if pos < len(in) {
				acc |= uint64(in[pos]) << uint(accBits)
				pos++
			}
			accBits += 8
		}
		values[i] = uint32(acc & mask)
		acc >>= uint(width)
		accBits -= width
	}

	return values, 1 + packedBytes, nil
}

// PackedSize returns the byte size Pack would produce for a block of the
// given length and width, without actually packing.
func PackedSize(length, width int) int {
	if width == 0 {
		return 1
	}

	return 1 + (length*width+7)/8
}
