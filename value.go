package ber

import "math/big"

// Value is the domain of primitive BER content this package can encode or
// decode: booleans, arbitrary-precision signed integers, raw octet
// strings, and the unit value NULL. Constructed TLVs carry no Value of
// their own, only children reached via Enter/Leave.
//
// Value is a closed set; the only implementations are [Boolean],
// [Integer], [OctetString], and [Null].
type Value interface {
	isValue()
}

// Boolean is the ASN.1 BOOLEAN value. Its default tag is [TagBoolean].
type Boolean bool

func (Boolean) isValue() {}

// Integer is an arbitrary-precision signed ASN.1 INTEGER value. Its
// default tag is [TagInteger]; written with an explicit [TagEnumerated]
// tag it becomes an ENUMERATED value using the same two's-complement
// content encoding.
type Integer struct {
	*big.Int
}

func (Integer) isValue() {}

// Int wraps a native signed integer as an [Integer] value.
func Int(n int64) Integer {
	return Integer{big.NewInt(n)}
}

// BigInt wraps an arbitrary-precision integer as an [Integer] value. The
// caller must not mutate n afterwards.
func BigInt(n *big.Int) Integer {
	return Integer{n}
}

// OctetString is a raw ASN.1 OCTET STRING value. Its default tag is
// [TagOctetString].
type OctetString []byte

func (OctetString) isValue() {}

// Null is the ASN.1 NULL value, a unit type with empty content. Its
// default tag is [TagNull].
type Null struct{}

func (Null) isValue() {}
