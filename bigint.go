package ber

import "math/big"

var bigOne = big.NewInt(1)

// encodeInteger returns the minimal two's-complement encoding of n: the
// shortest byte string whose leading bit equals the sign of n and which
// would represent a different value if its first byte were dropped.
//
// The algorithm mirrors the textbook two's-complement conversion: for a
// negative n, negate and subtract one to get a non-negative magnitude,
// invert every bit of that magnitude's big-endian bytes, and prepend a
// 0xFF sign-extension byte if the result doesn't already carry the sign
// in its top bit. Zero is always a single zero byte.
func encodeInteger(n *big.Int) []byte {
	switch n.Sign() {
	case 0:
		return []byte{0x00}
	case 1:
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			out := make([]byte, len(b)+1)
			copy(out[1:], b)
			return out
		}
		return b
	default:
		// nMinus1 = -n - 1, which is >= 0 for negative n.
		nMinus1 := new(big.Int).Neg(n)
		nMinus1.Sub(nMinus1, bigOne)
		b := nMinus1.Bytes()
		out := make([]byte, len(b))
		for i, v := range b {
			out[i] = ^v
		}
		if len(out) == 0 || out[0]&0x80 == 0 {
			ext := make([]byte, len(out)+1)
			ext[0] = 0xff
			copy(ext[1:], out)
			return ext
		}
		return out
	}
}

// decodeInteger parses a minimally encoded two's-complement integer.
// content must not be empty. It rejects a redundant leading 0x00 (when
// the following byte's sign bit is clear) or 0xFF (when the following
// byte's sign bit is set), per the DER minimal-encoding rule this codec
// enforces on decode.
func decodeInteger(content []byte) (*big.Int, error) {
	if len(content) == 0 {
		return nil, errTruncated
	}
	if len(content) >= 2 {
		if content[0] == 0x00 && content[1]&0x80 == 0 {
			return nil, errNonMinimal
		}
		if content[0] == 0xff && content[1]&0x80 != 0 {
			return nil, errNonMinimal
		}
	}
	if content[0]&0x80 == 0 {
		return new(big.Int).SetBytes(content), nil
	}
	inv := make([]byte, len(content))
	for i, b := range content {
		inv[i] = ^b
	}
	mag := new(big.Int).SetBytes(inv)
	mag.Add(mag, bigOne)
	return mag.Neg(mag), nil
}
