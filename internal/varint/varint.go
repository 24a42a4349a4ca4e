// Package varint provides zigzag and unsigned varint helpers shared by the
// integer codecs, grounded on the encoding/ts_delta.go delta-of-delta
// encoder's use of zigzag + binary.PutUvarint/Uvarint.
package varint

import "encoding/binary"

// ZigZagEncode maps a signed value to an unsigned one so that small-magnitude
// negative values stay small after encoding.
func ZigZagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// Len returns the number of bytes PutUvarint would write for n, without
// actually writing them. Used to size buffers before encoding.
func Len(n uint64) int {
	if n < 1<<7 {
		return 1
	}
	if n < 1<<14 {
		return 2
	}
	if n < 1<<21 {
		return 3
	}
	if n < 1<<28 {
		return 4
	}
	if n < 1<<35 {
		return 5
	}
	if n < 1<<42 {
		return 6
	}
	if n < 1<<49 {
		return 7
	}
	if n < 1<<56 {
		return 8
	}
	if n < 1<<63 {
		return 9
	}

	return 10
}

// Put appends the uvarint encoding of n to dst and returns the extended slice.
func Put(dst []byte, n uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	written := binary.PutUvarint(tmp[:], n)

	return append(dst, tmp[:written]...)
}
