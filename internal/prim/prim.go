// Package prim centralizes the type constraints and byte-level helpers the
// codec, stat, sample and dictionary packages all need to stay generic over
// T without repeating the same conversions. It follows the teacher's
// "generic-over-T" note: rather than monomorphizing every codec by hand for
// each of the twelve primitive kinds, narrow integer and float types share a
// single internal path and a per-type sizeof via unsafe.Sizeof.
package prim

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// Integer is the set of machine integer kinds the core operates on directly.
// i128 and i256 are out of scope for this implementation: Go has no native
// 128/256-bit integer kind, and none of the type-specialized codecs (RLE,
// Dict, Freq, Bitpacking, Delta) have a defined fixed-width lane size to
// monomorphize over for them. A wide column still round-trips correctly
// through the generic byte codecs by framing its raw fixed-size-array bytes
// directly, it just never gets a type-specialized encoding. See DESIGN.md.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of floating-point kinds the core operates on.
type Float interface {
	~float32 | ~float64
}

// Size returns sizeof(T) in bytes for any of the scalar kinds above.
func Size[T Integer | Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Widen converts any integer kind to its uint64 bit pattern. Signed values
// are sign-extended by the conversion, matching Go's usual semantics; this
// is used only to get a canonical byte pattern for hashing and storage, not
// for magnitude comparisons.
func Widen[T Integer](v T) uint64 {
	return uint64(v)
}

// Narrow converts a uint64 bit pattern back to T, truncating as needed.
func Narrow[T Integer](u uint64) T {
	return T(u)
}

// IntBytes writes the little-endian bytes of v (sizeof(T) of them) into dst,
// which must have length >= sizeof(T).
func IntBytes[T Integer](dst []byte, v T) {
	switch Size[T]() {
	case 1:
		dst[0] = byte(Widen(v))
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(Widen(v)))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(Widen(v)))
	case 8:
		binary.LittleEndian.PutUint64(dst, Widen(v))
	}
}

// IntFromBytes reads sizeof(T) little-endian bytes from src into a T.
func IntFromBytes[T Integer](src []byte) T {
	switch Size[T]() {
	case 1:
		return T(src[0])
	case 2:
		return T(binary.LittleEndian.Uint16(src))
	case 4:
		return T(binary.LittleEndian.Uint32(src))
	case 8:
		return T(binary.LittleEndian.Uint64(src))
	}

	return T(0)
}

// FloatBits returns the IEEE-754 bit pattern of v as a uint64, sign and NaN
// bit pattern preserved exactly (the total-order float wrapper of §4.4: no
// normalization of ±0 or NaN).
func FloatBits[T Float](v T) uint64 {
	switch any(v).(type) {
	case float32:
		return uint64(math.Float32bits(float32(v)))
	default:
		return math.Float64bits(float64(v))
	}
}

// FloatFromBits reconstructs a T from the uint64 bit pattern FloatBits
// produced, the exact inverse (NaN payload and sign included).
func FloatFromBits[T Float](bits uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Float32frombits(uint32(bits)))
	default:
		return T(math.Float64frombits(bits))
	}
}

// FloatBytes writes the little-endian IEEE-754 bytes of v into dst.
func FloatBytes[T Float](dst []byte, v T) {
	switch Size[T]() {
	case 4:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	case 8:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(float64(v)))
	}
}

// IntSliceBytes serializes values to a contiguous little-endian byte buffer,
// the raw storage representation the generic byte codecs (None/LZ4/Zstd/S2)
// compress directly.
func IntSliceBytes[T Integer](values []T) []byte {
	size := Size[T]()
	out := make([]byte, len(values)*size)
	for i, v := range values {
		IntBytes(out[i*size:(i+1)*size], v)
	}

	return out
}

// BytesToIntSlice reverses IntSliceBytes into out, which must already have
// length len(raw)/sizeof(T).
func BytesToIntSlice[T Integer](raw []byte, out []T) {
	size := Size[T]()
	for i := range out {
		out[i] = IntFromBytes[T](raw[i*size : (i+1)*size])
	}
}

// FloatSliceBytes is IntSliceBytes' float counterpart.
func FloatSliceBytes[T Float](values []T) []byte {
	size := Size[T]()
	out := make([]byte, len(values)*size)
	for i, v := range values {
		FloatBytes(out[i*size:(i+1)*size], v)
	}

	return out
}

// BytesToFloatSlice reverses FloatSliceBytes into out.
func BytesToFloatSlice[T Float](raw []byte, out []T) {
	size := Size[T]()
	for i := range out {
		out[i] = FloatFromBytes[T](raw[i*size : (i+1)*size])
	}
}

// FloatFromBytes reads sizeof(T) little-endian IEEE-754 bytes from src.
func FloatFromBytes[T Float](src []byte) T {
	var zero T
	switch Size[T]() {
	case 4:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(src)))
	case 8:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(src)))
	}

	return zero
}
