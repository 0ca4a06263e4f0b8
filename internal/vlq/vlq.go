// Package vlq implements the base-128 variable-length quantity encoding
// used for BER tag numbers greater than 30. A VLQ is a big-endian base-128
// representation of an unsigned integer: the eighth bit of every octet
// except the last is set to signal continuation.
//
// Unlike a general-purpose VLQ codec, this package operates directly on
// byte slices rather than [io.Reader]/[io.Writer] streams, since the
// surrounding codec always has the complete input or output buffer
// available in memory.
package vlq

import (
	"errors"
	"math/bits"
)

var (
	// ErrNotMinimal is returned by Read when the encoded value starts with
	// a continuation-only byte (0x80), which never occurs in a minimally
	// encoded VLQ.
	ErrNotMinimal = errors.New("vlq: value is not minimally encoded")

	// ErrOverflow is returned by Read when the encoded value does not fit
	// into a uint64.
	ErrOverflow = errors.New("vlq: value too large for target type")

	// ErrTruncated is returned by Read when src ends before a terminating
	// (continuation bit clear) byte is found.
	ErrTruncated = errors.New("vlq: truncated")
)

// Len returns the number of bytes needed to encode n as a VLQ.
func Len(n uint64) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append encodes n as a VLQ and appends it to dst, returning the extended
// slice.
func Append(dst []byte, n uint64) []byte {
	l := Len(n)
	for i := l - 1; i >= 0; i-- {
		b := byte(n>>(uint(i)*7)) & 0x7f
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// Read parses a VLQ from the start of src. It returns the decoded value
// and the number of bytes consumed. Read fails if src ends before a
// terminating byte is found, if the leading byte is the non-minimal
// continuation marker 0x80, or if the value overflows a uint64.
func Read(src []byte) (value uint64, n int, err error) {
	if len(src) == 0 {
		return 0, 0, ErrTruncated
	}
	if src[0] == 0x80 {
		return 0, 0, ErrNotMinimal
	}

	b := src[0]
	value = uint64(b & 0x7f)
	numBits := bits.Len8(b & 0x7f)
	n = 1

	for b&0x80 != 0 {
		if n == len(src) {
			return 0, 0, ErrTruncated
		}
		b = src[n]
		n++
		value <<= 7
		value |= uint64(b & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(b & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > 64 {
			return 0, 0, ErrOverflow
		}
	}
	return value, n, nil
}
