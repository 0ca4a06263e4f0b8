// Package ber implements a streaming codec for the subset of ASN.1 Basic
// Encoding Rules (BER) needed to speak LDAP- and Kerberos-style wire
// protocols: BOOLEAN, INTEGER, OCTET STRING, NULL, ENUMERATED, SEQUENCE,
// SET, and tagged values in the universal, application, context-specific
// and private classes. See [Rec. ITU-T X.690].
//
// # Headers and Values
//
// Every BER data value is a tag-length-value (TLV) triple. The tag
// identifies the value's number and class and whether it uses the
// primitive or constructed encoding; the length gives the size of the
// content octets; the value is either raw content (primitive) or a
// concatenation of further TLVs (constructed). [Tag] represents the
// identity half of this triple.
//
// # Encoder and Decoder
//
// [Encoder] builds a complete BER encoding by accumulating primitive
// values and backpatching the length of constructed containers once
// their content is known. [Decoder] walks a complete, already-buffered
// encoding the opposite way: headers are parsed on demand and children
// of a constructed value are only visited after an explicit [Decoder.Enter].
//
// Both types are single-pass, reusable via Start, and maintain an
// explicit stack of open containers rather than relying on recursion,
// which keeps nesting depth bounded and enforceable (see
// [DefaultMaxDepth]).
//
// This package only supports the definite-length form. Indefinite-length
// encoding, DER canonicalization beyond the minimal-integer rule already
// enforced here, and ASN.1 string/OID/time types are out of scope.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package ber
