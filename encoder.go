package ber

// DefaultMaxDepth bounds the nesting depth of constructed values an
// [Encoder] or [Decoder] will process, guarding against runaway
// recursion or memory use from pathological input. It is not
// configurable at runtime.
const DefaultMaxDepth = 128

// encFrame records an open constructed container: its tag, and the
// offset into Encoder.buf at which its body begins.
type encFrame struct {
	tag       Tag
	bodyStart int
}

// Encoder builds a complete BER encoding by accumulating primitive values
// and backpatching the tag and length of constructed containers once
// their content is known. An Encoder is not safe for concurrent use, but
// distinct Encoders share no state and may be used concurrently from
// different goroutines.
//
// The zero value is not ready to use; call [Encoder.Start] first, or use
// [NewEncoder].
type Encoder struct {
	buf     []byte
	stack   []encFrame
	started bool
	wrote   bool
}

// NewEncoder returns a new, started Encoder.
func NewEncoder() *Encoder {
	e := new(Encoder)
	e.Start()
	return e
}

// Start resets e to its initial state, discarding any buffered output.
// Start always succeeds and may be called at any time, including after an
// error or mid-way through an unfinished encoding.
func (e *Encoder) Start() {
	e.buf = e.buf[:0]
	e.stack = e.stack[:0]
	e.started = true
	e.wrote = false
}

// Write appends one primitive TLV at the current insertion point: the
// body of the innermost open container (see [Encoder.Enter]), or the
// top-level output if no container is open.
//
// The tag is inferred from v's type (Boolean, Integer, OctetString, or
// Null map to [TagBoolean], [TagInteger], [TagOctetString], and
// [TagNull] respectively) unless an explicit tag override is given. At
// most one override may be passed; its Kind is ignored and always
// written as [Primitive]. Content encoding always follows v's Go type,
// not the tag: writing an Integer with an explicit [TagEnumerated]
// override, for instance, still uses two's-complement integer encoding,
// just tagged as ENUMERATED.
func (e *Encoder) Write(v Value, tag ...Tag) error {
	if !e.started {
		return codecErr("write", errMisuse, -1, "encoder not started")
	}
	if len(tag) > 1 {
		return codecErr("write", errMisuse, len(e.buf), "at most one explicit tag may be given")
	}

	t, err := e.resolveTag(v, tag)
	if err != nil {
		return err
	}
	content, err := encodeContent(v)
	if err != nil {
		return err
	}

	e.buf = encodeTag(e.buf, t)
	e.buf = encodeLength(e.buf, len(content))
	e.buf = append(e.buf, content...)
	e.wrote = true
	return nil
}

// resolveTag determines the tag to use for writing v, applying any
// explicit override.
func (e *Encoder) resolveTag(v Value, override []Tag) (Tag, error) {
	if len(override) == 1 {
		t := override[0]
		t.Kind = Primitive
		return t, nil
	}
	switch v.(type) {
	case Boolean:
		return Universal(TagBoolean, Primitive), nil
	case Integer:
		return Universal(TagInteger, Primitive), nil
	case OctetString:
		return Universal(TagOctetString, Primitive), nil
	case Null:
		return Universal(TagNull, Primitive), nil
	default:
		return Tag{}, codecErr("write", errMisuse, len(e.buf), "unsupported value type")
	}
}

// encodeContent encodes the content octets of v, independent of the tag
// it will be written under.
func encodeContent(v Value) ([]byte, error) {
	switch val := v.(type) {
	case Boolean:
		if val {
			return []byte{0xff}, nil
		}
		return []byte{0x00}, nil
	case Integer:
		if val.Int == nil {
			return nil, codecErr("write", errMisuse, -1, "nil Integer value")
		}
		return encodeInteger(val.Int), nil
	case OctetString:
		return []byte(val), nil
	case Null:
		return nil, nil
	default:
		return nil, codecErr("write", errMisuse, -1, "unsupported value type")
	}
}

// Enter opens a constructed container at the current insertion point.
// tag.Kind is ignored; the container is always written as [Constructed].
// Every Enter must be matched by a [Encoder.Leave] before [Encoder.Output]
// succeeds.
func (e *Encoder) Enter(tag Tag) error {
	if !e.started {
		return codecErr("enter", errMisuse, -1, "encoder not started")
	}
	if len(e.stack) >= DefaultMaxDepth {
		return codecErr("enter", errUnsupported, len(e.buf), "maximum nesting depth exceeded")
	}
	tag.Kind = Constructed
	e.stack = append(e.stack, encFrame{tag: tag, bodyStart: len(e.buf)})
	return nil
}

// EnterSequence opens a universal-class SEQUENCE container, equivalent to
// Enter(Universal(TagSequence, Constructed)).
func (e *Encoder) EnterSequence() error {
	return e.Enter(Universal(TagSequence, Constructed))
}

// EnterSet opens a universal-class SET container, equivalent to
// Enter(Universal(TagSet, Constructed)).
func (e *Encoder) EnterSet() error {
	return e.Enter(Universal(TagSet, Constructed))
}

// Leave closes the innermost open container, computing its length from
// the bytes written since the matching Enter and wrapping them in the
// container's tag and length.
func (e *Encoder) Leave() error {
	if !e.started {
		return codecErr("leave", errMisuse, -1, "encoder not started")
	}
	if len(e.stack) == 0 {
		return codecErr("leave", errMisuse, len(e.buf), "no open container")
	}

	f := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	body := append([]byte(nil), e.buf[f.bodyStart:]...)
	e.buf = e.buf[:f.bodyStart]
	e.buf = encodeTag(e.buf, f.tag)
	e.buf = encodeLength(e.buf, len(body))
	e.buf = append(e.buf, body...)
	e.wrote = true
	return nil
}

// Output returns the complete encoding accumulated since the last Start.
// It fails if any container opened with Enter has not been closed with
// Leave, or if nothing has been written.
func (e *Encoder) Output() ([]byte, error) {
	if !e.started {
		return nil, codecErr("output", errMisuse, -1, "encoder not started")
	}
	if len(e.stack) != 0 {
		return nil, codecErr("output", errMisuse, len(e.buf), "unclosed container")
	}
	if !e.wrote {
		return nil, codecErr("output", errMisuse, 0, "no value written")
	}
	return append([]byte(nil), e.buf...), nil
}
