// Package page implements the self-describing page frame (C8) and the
// validity-bitmap coupling (C9): every encoded page, specialized or
// generic, is wrapped as [codec:u8][compressed_len:u32 LE][uncompressed_len:u32
// LE][payload], so a reader can skip or decode any page without first
// knowing its type.
package page

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/strawboat/strawboat/errs"
	"github.com/strawboat/strawboat/format"
	"github.com/strawboat/strawboat/internal/pool"
)

const headerSize = 9

// WriteFrame appends codecID, the two size fields, and payload to buf.
func WriteFrame(buf *pool.ByteBuffer, codecID format.CodecID, uncompressedLen int, payload []byte) {
	var hdr [headerSize]byte
	hdr[0] = byte(codecID)
	binary.LittleEndian.PutUint32(hdr[1:5], uint32(len(payload)))
	binary.LittleEndian.PutUint32(hdr[5:9], uint32(uncompressedLen))

	buf.MustWrite(hdr[:])
	buf.MustWrite(payload)
}

// AppendFrame is WriteFrame for plain []byte builders (used where no
// pool.ByteBuffer is in scope, e.g. composing a nested sub-page inline).
func AppendFrame(dst []byte, codecID format.CodecID, uncompressedLen int, payload []byte) []byte {
	var hdr [headerSize]byte
	hdr[0] = byte(codecID)
	binary.LittleEndian.PutUint32(hdr[1:5], uint32(len(payload)))
	binary.LittleEndian.PutUint32(hdr[5:9], uint32(uncompressedLen))

	dst = append(dst, hdr[:]...)
	dst = append(dst, payload...)

	return dst
}

// ReadFrame parses a frame written by AppendFrame/WriteFrame out of a flat
// byte slice (used for nested sub-pages, which are never streamed) and
// returns the codec id, the payload slice (aliasing src), the declared
// uncompressed length, and the number of bytes consumed.
func ReadFrame(src []byte) (codecID format.CodecID, payload []byte, uncompressedLen int, consumed int, err error) {
	if len(src) < headerSize {
		return 0, nil, 0, 0, errs.ErrTruncated
	}

	codecID = format.CodecID(src[0])
	if !format.Known(codecID) {
		return 0, nil, 0, 0, errs.ErrUnknownCodec
	}

	compLen := binary.LittleEndian.Uint32(src[1:5])
	uncompressedLen = int(binary.LittleEndian.Uint32(src[5:9]))

	end := headerSize + int(compLen)
	if len(src) < end {
		return 0, nil, 0, 0, errs.ErrTruncated
	}

	return codecID, src[headerSize:end], uncompressedLen, end, nil
}

// byteReader is the buffered-reader contract the streaming path needs:
// Peek to try borrowing payload bytes directly from the reader's internal
// buffer, Discard to consume them without copying, Read as the io.Reader
// fallback. *bufio.Reader satisfies this exactly.
type byteReader interface {
	io.Reader
	Peek(n int) ([]byte, error)
	Discard(n int) (int, error)
}

// StreamReader reads a sequence of frames from an underlying io.Reader,
// reusing one scratch buffer across pages for the cases where a payload
// can't be borrowed directly out of the buffered reader's internal buffer.
type StreamReader struct {
	r       *bufio.Reader
	scratch *pool.ByteBuffer
}

// NewStreamReader wraps r (or reuses it directly if already a *bufio.Reader,
// whatever its buffer size) for sequential frame reads.
func NewStreamReader(r io.Reader) *StreamReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &StreamReader{r: br, scratch: pool.NewByteBuffer(pool.BlobBufferDefaultSize)}
}

// ReadFrame reads the next frame header and payload. The returned payload
// is valid only until the next ReadFrame call: it may alias the reader's
// internal buffer (inner path) or the StreamReader's own scratch buffer.
func (s *StreamReader) ReadFrame() (codecID format.CodecID, payload []byte, uncompressedLen int, err error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(s.r, hdr[:]); err != nil {
		return 0, nil, 0, errs.ErrTruncated
	}

	codecID = format.CodecID(hdr[0])
	if !format.Known(codecID) {
		return 0, nil, 0, errs.ErrUnknownCodec
	}

	compLen := int(binary.LittleEndian.Uint32(hdr[1:5]))
	uncompressedLen = int(binary.LittleEndian.Uint32(hdr[5:9]))

	if compLen == 0 {
		return codecID, nil, uncompressedLen, nil
	}

	if b, err := s.r.Peek(compLen); err == nil {
		if _, derr := s.r.Discard(compLen); derr != nil {
			return 0, nil, 0, errs.WrapIO(derr)
		}

		return codecID, b, uncompressedLen, nil
	}

	s.scratch.Reset()
	s.scratch.ExtendOrGrow(compLen)
	buf := s.scratch.Bytes()
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return 0, nil, 0, errs.ErrTruncated
	}

	return codecID, buf, uncompressedLen, nil
}
