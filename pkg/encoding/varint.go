package encoding

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrEncodingTooLarge is returned when a value exceeds what a given
// length-prefixed encoding can represent.
var ErrEncodingTooLarge = errors.New("value too large to encode")

// EncodeVarint encodes n in the Bitcoin variable-length integer format:
// one raw byte below 0xfd, otherwise a 0xfd/0xfe/0xff marker followed by
// a 2, 4 or 8 byte little-endian value.
func EncodeVarint(n uint64) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n < 1<<16:
		buf := make([]byte, 3)
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(n))
		return buf
	case n < 1<<32:
		buf := make([]byte, 5)
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:], uint32(n))
		return buf
	default:
		buf := make([]byte, 9)
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:], n)
		return buf
	}
}

// ReadVarint reads a variable-length integer from r.
func ReadVarint(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	switch prefix[0] {
	case 0xfd:
		var buf [2]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(buf[:])), nil
	case 0xfe:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(buf[:])), nil
	case 0xff:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(buf[:]), nil
	default:
		return uint64(prefix[0]), nil
	}
}

// LittleEndianToInt interprets b as a little-endian unsigned integer.
// Script length fields are at most 4 bytes, which fits a uint64.
func LittleEndianToInt(b []byte) uint64 {
	var n uint64
	for i := len(b) - 1; i >= 0; i-- {
		n = n<<8 | uint64(b[i])
	}
	return n
}

// IntToLittleEndian encodes n as length little-endian bytes.
func IntToLittleEndian(n uint64, length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = byte(n)
		n >>= 8
	}
	return out
}
