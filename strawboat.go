// Package strawboat implements an adaptive columnar page codec for
// Arrow-style primitive and boolean columns.
//
// Each page is self-describing: its frame header carries the codec id that
// was used to encode it, so a reader never needs an external schema to know
// how to decompress a page. Writing a page picks, per call, whichever
// available codec -- a type-specialized one (run-length, dictionary,
// frequency, bit-packing, delta) or a generic byte compressor (LZ4, Zstd,
// S2) -- is predicted to compress best, governed by Options.
//
// # Basic usage
//
// Encoding an int32 column with a validity bitmap:
//
//	values := []int32{10, 10, 10, 11, 12, 12}
//	validity := []bool{true, true, true, false, true, true}
//
//	frame, err := strawboat.EncodeIntegerColumn(values, validity)
//	if err != nil {
//	    // handle error
//	}
//
//	decoded, decodedValidity, err := strawboat.DecodeIntegerColumn[int32](frame, len(values))
//
// Float and boolean columns follow the same shape:
//
//	frame, _ := strawboat.EncodeFloatColumn(values64, nil)
//	decoded, _, _ := strawboat.DecodeFloatColumn[float64](frame, len(values64))
//
//	frame, _ = strawboat.EncodeBooleanColumn(flags, nil)
//	decoded, _, _ = strawboat.DecodeBooleanColumn(frame, len(flags))
//
// # Options
//
// EncodeIntegerColumn/EncodeFloatColumn/EncodeBooleanColumn all accept the
// same functional Options used to configure the selection policy directly:
// forbidding specific codecs, tuning the ratio threshold a specialized
// codec must clear over the generic fallback, overriding the frequency
// codec's dominance trigger, and fixing the sample harness's RNG for
// deterministic tests.
package strawboat

import (
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/prim"
	"github.com/strawboat/strawboat/page"
	"github.com/strawboat/strawboat/policy"
)

// Option configures codec selection. See policy.Option for the full list of
// With* constructors re-exported below.
type Option = policy.Option

// WithForbidden excludes the given codec ids from consideration.
func WithForbidden(ids ...format.CodecID) Option {
	return policy.WithForbidden(format.NewForbidden(ids...))
}

// WithRatioThreshold overrides policy.DefaultRatioThreshold.
func WithRatioThreshold(t float64) Option {
	return policy.WithRatioThreshold(t)
}

// WithFreqDominance overrides the Freq codec's dominance trigger.
func WithFreqDominance(d float64) Option {
	return policy.WithFreqDominance(d)
}

// EncodeIntegerColumn frames values (plus an optional validity bitmap) into
// a single self-describing byte sequence.
func EncodeIntegerColumn[T prim.Integer](values []T, validity []bool, opts ...Option) ([]byte, error) {
	return page.EncodeIntegerColumn(values, validity, policy.NewOptions(opts...))
}

// DecodeIntegerColumn reverses EncodeIntegerColumn. count must equal the
// original column length (callers track this externally, e.g. from a
// schema or an enclosing record batch).
func DecodeIntegerColumn[T prim.Integer](frame []byte, count int, opts ...Option) (values []T, validity []bool, err error) {
	return page.DecodeIntegerColumn[T](frame, count, policy.NewOptions(opts...))
}

// EncodeFloatColumn is EncodeIntegerColumn's floating-point twin.
func EncodeFloatColumn[T prim.Float](values []T, validity []bool, opts ...Option) ([]byte, error) {
	return page.EncodeFloatColumn(values, validity, policy.NewOptions(opts...))
}

// DecodeFloatColumn is DecodeIntegerColumn's floating-point twin.
func DecodeFloatColumn[T prim.Float](frame []byte, count int, opts ...Option) (values []T, validity []bool, err error) {
	return page.DecodeFloatColumn[T](frame, count, policy.NewOptions(opts...))
}

// EncodeBooleanColumn is EncodeIntegerColumn's boolean twin.
func EncodeBooleanColumn(values []bool, validity []bool, opts ...Option) ([]byte, error) {
	return page.EncodeBooleanColumn(values, validity, policy.NewOptions(opts...))
}

// DecodeBooleanColumn is DecodeIntegerColumn's boolean twin.
func DecodeBooleanColumn(frame []byte, count int, opts ...Option) (values []bool, validity []bool, err error) {
	return page.DecodeBooleanColumn(frame, count, policy.NewOptions(opts...))
}
