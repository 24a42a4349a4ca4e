// Package errs defines the sentinel errors and wrapper types shared by the
// codec, page, policy, stat, sample and dictionary packages.
//
// Every error the core reports belongs to one of the kinds below. The core
// performs no retries and no partial recovery: once an error is returned for
// a page, the reader or writer that produced it is considered poisoned.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the five error kinds the core can produce.
var (
	// ErrTruncated indicates the reader ran out of bytes mid-header or mid-payload.
	ErrTruncated = errors.New("strawboat: truncated page")

	// ErrUnknownCodec indicates a codec id byte outside the format package's catalog.
	ErrUnknownCodec = errors.New("strawboat: unknown codec id")

	// ErrInvalidPayload indicates a codec-specific structural error, e.g. a
	// dictionary cardinality larger than the remaining bytes, a bitpack width
	// greater than 32, or an RLE run length of zero.
	ErrInvalidPayload = errors.New("strawboat: invalid payload")

	// ErrSizeMismatch indicates the decoded element count did not equal the
	// expected length L.
	ErrSizeMismatch = errors.New("strawboat: decoded size mismatch")

	// ErrForbiddenCodec indicates the selection policy was asked to pick a
	// codec that the caller's forbidden set excludes.
	ErrForbiddenCodec = errors.New("strawboat: codec forbidden by caller options")
)

// CodecError wraps an underlying error with the codec id that produced it,
// the way blob/numeric_decoder.go wraps decompression and validation
// failures with their originating compression algorithm.
type CodecError struct {
	CodecID uint8
	Op      string
	Err     error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("strawboat: codec %d: %s: %v", e.CodecID, e.Op, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// WrapCodec tags err with the codec id and operation name that produced it.
// Returns nil if err is nil.
func WrapCodec(codecID uint8, op string, err error) error {
	if err == nil {
		return nil
	}

	return &CodecError{CodecID: codecID, Op: op, Err: err}
}

// IOError wraps an error returned by the caller-provided reader or writer.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("strawboat: io: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// WrapIO tags err as originating from the underlying reader/writer.
// Returns nil if err is nil.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}

	return &IOError{Err: err}
}
