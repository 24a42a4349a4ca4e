package boolean

func bitmapBytes(n int) int { return (n + 7) / 8 }

func setBit(bm []byte, i int) { bm[i/8] |= 1 << uint(i%8) }

func getBit(bm []byte, i int) bool { return bm[i/8]&(1<<uint(i%8)) != 0 }
