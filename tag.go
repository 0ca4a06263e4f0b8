package ber

import (
	"strconv"

	"github.com/dirber/ber/internal/vlq"
)

// Class identifies the namespace of a [Tag]. In the wire encoding, the
// class occupies the two most significant bits of the identifier octet.
//
// See also section 8 of Rec. ITU-T X.690.
type Class uint8

// The four BER tag classes.
const (
	ClassUniversal   Class = 0x00
	ClassApplication Class = 0x40
	ClassContext     Class = 0x80
	ClassPrivate     Class = 0xC0
)

// String returns a human-readable name for c.
func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContext:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	default:
		return "INVALID"
	}
}

// Kind distinguishes the primitive encoding (raw content octets) from the
// constructed encoding (content is a concatenation of further TLVs).
type Kind bool

// The two BER encoding kinds.
const (
	Primitive   Kind = false
	Constructed Kind = true
)

// Universal tag numbers understood by this package, as assigned by
// Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean     uint64 = 1
	TagInteger     uint64 = 2
	TagOctetString uint64 = 4
	TagNull        uint64 = 5
	TagEnumerated  uint64 = 10
	TagSequence    uint64 = 16
	TagSet         uint64 = 17
)

// Tag identifies a BER-encoded data value: its tag number, whether it
// uses the primitive or constructed encoding, and its class.
//
// Tag numbers are non-negative. Numbers up to 30 are encoded in the low
// five bits of a single identifier octet; larger numbers spill into a
// base-128 big-endian varint that follows it.
type Tag struct {
	Number uint64
	Kind   Kind
	Class  Class
}

// Universal returns the universal-class tag identified by number, using
// the given kind. This is a convenience for the common case of writing a
// tag such as [TagSequence] or [TagSet].
func Universal(number uint64, kind Kind) Tag {
	return Tag{Number: number, Kind: kind, Class: ClassUniversal}
}

// ApplicationTag returns an application-class tag with the given number
// and kind.
func ApplicationTag(number uint64, kind Kind) Tag {
	return Tag{Number: number, Kind: kind, Class: ClassApplication}
}

// ContextTag returns a context-specific tag with the given number and
// kind.
func ContextTag(number uint64, kind Kind) Tag {
	return Tag{Number: number, Kind: kind, Class: ClassContext}
}

// PrivateTag returns a private-class tag with the given number and kind.
func PrivateTag(number uint64, kind Kind) Tag {
	return Tag{Number: number, Kind: kind, Class: ClassPrivate}
}

// String returns a representation of t similar to ASN.1 notation, e.g.
// "[UNIVERSAL 16]/c" for a constructed SEQUENCE tag.
func (t Tag) String() string {
	s := "[" + t.Class.String() + " " + strconv.FormatUint(t.Number, 10) + "]"
	if t.Kind == Constructed {
		return s + "/c"
	}
	return s + "/p"
}

// encodeTag appends the BER identifier octets for t to dst and returns
// the extended slice.
func encodeTag(dst []byte, t Tag) []byte {
	b := byte(t.Class)
	if t.Kind == Constructed {
		b |= 0x20
	}
	if t.Number < 31 {
		return append(dst, b|byte(t.Number))
	}
	dst = append(dst, b|0x1f)
	return vlq.Append(dst, t.Number)
}

// decodeTag parses the BER identifier octets at the start of src. It
// returns the decoded tag and the number of bytes consumed. decodeTag
// never reads past len(src).
func decodeTag(src []byte) (t Tag, n int, err error) {
	if len(src) == 0 {
		return Tag{}, 0, errTruncated
	}
	b := src[0]
	t.Class = Class(b & 0xc0)
	if b&0x20 != 0 {
		t.Kind = Constructed
	}
	if b&0x1f != 0x1f {
		t.Number = uint64(b & 0x1f)
		return t, 1, nil
	}
	num, used, err := vlq.Read(src[1:])
	if err != nil {
		return Tag{}, 0, wrapVLQError(err)
	}
	t.Number = num
	return t, 1 + used, nil
}
