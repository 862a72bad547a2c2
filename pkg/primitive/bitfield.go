package primitive

// A face bitfield is a uint32 face mask written big-endian in 7-bit groups.
// Every byte except the last has the continuation bit (0x80) set. A lone zero
// byte terminates the run list of a channel.

const continuationBit = 0x80

// EncodeFaceBitfield returns the minimal encoding of mask.
// A zero mask encodes to the single terminator byte.
func EncodeFaceBitfield(mask uint32) []byte {
	n := 0
	for tmp := mask; tmp != 0; tmp >>= 7 {
		n++
	}
	if n == 0 {
		return []byte{0}
	}

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(mask>>(7*uint(n-i-1))) & 0x7F
		if i < n-1 {
			out[i] |= continuationBit
		}
	}
	return out
}

// DecodeFaceBitfield reads a face bitfield starting at pos.
// size is the number of mask bits the run covers (7 per byte read) and next
// is the position after the run. ok is false when the mask is zero, which
// marks the end of a channel, or when pos is already past the data.
func DecodeFaceBitfield(data []byte, pos int) (mask uint32, size int, next int, ok bool) {
	if pos < 0 || pos >= len(data) {
		return 0, 0, pos, false
	}

	for {
		b := data[pos]
		pos++
		mask = mask<<7 | uint32(b&0x7F)
		size += 7
		if b&continuationBit == 0 || pos >= len(data) {
			break
		}
	}

	return mask, size, pos, mask != 0
}
