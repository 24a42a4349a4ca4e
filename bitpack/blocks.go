package bitpack

// PackAll splits values into BlockSize-lane blocks, computes each block's own
// width, and appends the resulting [width][packed] sequence to dst. The
// caller tracks the logical element count (L) separately; UnpackAll needs it
// back to know how many blocks to read and how long the final one is.
func PackAll(dst []byte, values []uint32) []byte {
	for i := 0; i < len(values); i += BlockSize {
		end := i + BlockSize
		if end > len(values) {
			end = len(values)
		}

		block := values[i:end]
		dst = Pack(dst, block, WidthFor(block))
	}

	return dst
}

// UnpackAll reverses PackAll given the original element count.
func UnpackAll(src []byte, count int) ([]uint32, error) {
	out := make([]uint32, 0, count)
	remaining := count

	for remaining > 0 {
		n := remaining
		if n > BlockSize {
			n = BlockSize
		}

		block, consumed, err := Unpack(src, n)
		if err != nil {
			return nil, err
		}

		out = append(out, block...)
		src = src[consumed:]
		remaining -= n
	}

	return out, nil
}
