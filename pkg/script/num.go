package script

// EncodeNum converts an integer to the script number format:
// little-endian sign-magnitude, with zero encoding to the empty string.
// If the magnitude's top byte would have its high bit set, an extra byte
// is appended (0x00 positive, 0x80 negative); otherwise a negative value
// sets the high bit on the top byte itself.
func EncodeNum(n int64) []byte {
	if n == 0 {
		return []byte{}
	}

	negative := n < 0
	abs := uint64(n)
	if negative {
		abs = uint64(-n)
	}

	var out []byte
	for abs > 0 {
		out = append(out, byte(abs&0xff))
		abs >>= 8
	}

	if out[len(out)-1]&0x80 != 0 {
		if negative {
			out = append(out, 0x80)
		} else {
			out = append(out, 0x00)
		}
	} else if negative {
		out[len(out)-1] |= 0x80
	}
	return out
}

// DecodeNum reverses EncodeNum. The last byte's high bit carries the
// sign; the magnitude is reassembled most significant byte first.
func DecodeNum(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}

	negative := b[len(b)-1]&0x80 != 0
	var n int64
	for i := len(b) - 1; i >= 0; i-- {
		v := b[i]
		if i == len(b)-1 {
			v &= 0x7f
		}
		n = n<<8 | int64(v)
	}
	if negative {
		return -n
	}
	return n
}
