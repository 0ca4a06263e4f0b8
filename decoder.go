package ber

// decFrame records an open constructed container being walked: the
// content-end offset beyond which the cursor must not advance until
// Leave is called.
type decFrame struct {
	end int
}

// Decoder walks a complete, in-memory BER encoding one TLV at a time. A
// Decoder borrows its input slice — it must not outlive it, and never
// mutates it. A Decoder is not safe for concurrent use, but distinct
// Decoders share no state and may be used concurrently from different
// goroutines.
//
// The zero value is not ready to use; call [Decoder.Start] first, or use
// [NewDecoder].
type Decoder struct {
	input   []byte
	cursor  int
	stack   []decFrame
	started bool
}

// NewDecoder returns a new Decoder reading from input.
func NewDecoder(input []byte) *Decoder {
	d := new(Decoder)
	d.Start(input)
	return d
}

// Start resets d to read from the beginning of input, discarding any
// prior position. Start always succeeds and may be called at any time,
// including after an error or mid-way through an unfinished decode.
func (d *Decoder) Start(input []byte) {
	d.input = input
	d.cursor = 0
	d.stack = d.stack[:0]
	d.started = true
}

// frameEnd returns the end offset of the innermost open container, or the
// end of the input if no container is open.
func (d *Decoder) frameEnd() int {
	if len(d.stack) == 0 {
		return len(d.input)
	}
	return d.stack[len(d.stack)-1].end
}

// parseHeader parses the tag and length at offset without mutating d. It
// returns the parsed tag, the offset at which content begins, and the
// content length. Every field it reads is checked against both the end
// of the input and the innermost open frame.
func (d *Decoder) parseHeader(offset int) (tag Tag, contentStart, contentLen int, err error) {
	limit := d.frameEnd()
	header := d.input[offset:limit]

	tag, tn, err := decodeTag(header)
	if err != nil {
		return Tag{}, 0, 0, err
	}
	length, ln, err := decodeLength(header[tn:])
	if err != nil {
		return Tag{}, 0, 0, err
	}

	contentStart = offset + tn + ln
	switch {
	case length > len(d.input)-contentStart:
		return Tag{}, 0, 0, errTruncated
	case length > limit-contentStart:
		return Tag{}, 0, 0, errStructure
	}
	return tag, contentStart, length, nil
}

// Peek reports the tag of the TLV at the current cursor without
// advancing it, or ok == false if the cursor is at the end of the
// innermost open container (or of the input, at the top level).
// Repeated calls to Peek without an intervening Read, Enter, or Leave
// return identical results.
func (d *Decoder) Peek() (tag Tag, ok bool, err error) {
	if !d.started {
		return Tag{}, false, codecErr("peek", errMisuse, -1, "decoder not started")
	}
	if d.cursor == d.frameEnd() {
		return Tag{}, false, nil
	}
	tag, _, _, err = d.parseHeader(d.cursor)
	if err != nil {
		return Tag{}, false, codecErr("peek", err, d.cursor, reasonFor(err))
	}
	return tag, true, nil
}

// Read decodes the primitive TLV at the current cursor and advances past
// it. It fails if the TLV at the cursor is constructed; use
// [Decoder.Enter] for those.
func (d *Decoder) Read() (Value, error) {
	if !d.started {
		return nil, codecErr("read", errMisuse, -1, "decoder not started")
	}
	if d.cursor == d.frameEnd() {
		return nil, codecErr("read", errStructure, d.cursor, "no value at cursor")
	}
	tag, contentStart, contentLen, err := d.parseHeader(d.cursor)
	if err != nil {
		return nil, codecErr("read", err, d.cursor, reasonFor(err))
	}
	if tag.Kind == Constructed {
		return nil, codecErr("read", errMisuse, d.cursor, "cannot read a constructed value")
	}

	content := d.input[contentStart : contentStart+contentLen]
	val, err := decodeContent(tag, content)
	if err != nil {
		return nil, codecErr("read", err, d.cursor, reasonFor(err))
	}
	d.cursor = contentStart + contentLen
	return val, nil
}

// Enter descends into the constructed TLV at the current cursor, pushing
// a frame bounding its children and advancing the cursor to the start of
// its content. It fails if the TLV at the cursor is primitive.
func (d *Decoder) Enter() error {
	if !d.started {
		return codecErr("enter", errMisuse, -1, "decoder not started")
	}
	if d.cursor == d.frameEnd() {
		return codecErr("enter", errStructure, d.cursor, "no value at cursor")
	}
	if len(d.stack) >= DefaultMaxDepth {
		return codecErr("enter", errUnsupported, d.cursor, "maximum nesting depth exceeded")
	}
	tag, contentStart, contentLen, err := d.parseHeader(d.cursor)
	if err != nil {
		return codecErr("enter", err, d.cursor, reasonFor(err))
	}
	if tag.Kind != Constructed {
		return codecErr("enter", errMisuse, d.cursor, "cannot enter a primitive value")
	}

	d.stack = append(d.stack, decFrame{end: contentStart + contentLen})
	d.cursor = contentStart
	return nil
}

// Leave returns from the innermost open container to its parent. It
// fails if the stack is empty, or if the cursor has not reached the end
// of the container (i.e. not all of its children have been read).
func (d *Decoder) Leave() error {
	if !d.started {
		return codecErr("leave", errMisuse, -1, "decoder not started")
	}
	if len(d.stack) == 0 {
		return codecErr("leave", errMisuse, d.cursor, "no open container")
	}
	top := d.stack[len(d.stack)-1]
	if d.cursor != top.end {
		return codecErr("leave", errStructure, d.cursor, "not all children consumed")
	}
	d.stack = d.stack[:len(d.stack)-1]
	return nil
}

// decodeContent decodes the content octets of a primitive TLV according
// to its tag. Universal Boolean, Integer, Enumerated, OctetString, and
// Null tags are decoded per their semantics; any other tag (including
// all non-universal classes) is returned as raw bytes.
//
// Boolean decodes to an [Integer] of 1 or 0 rather than to a native Go
// bool, by design: callers built against this package's Kerberos/LDAP
// heritage expect an integer domain value for booleans.
func decodeContent(tag Tag, content []byte) (Value, error) {
	if tag.Class == ClassUniversal {
		switch tag.Number {
		case TagBoolean:
			if len(content) != 1 {
				return nil, errStructure
			}
			if content[0] != 0 {
				return Int(1), nil
			}
			return Int(0), nil
		case TagInteger, TagEnumerated:
			n, err := decodeInteger(content)
			if err != nil {
				return nil, err
			}
			return Integer{n}, nil
		case TagOctetString:
			return OctetString(append([]byte(nil), content...)), nil
		case TagNull:
			if len(content) != 0 {
				return nil, errStructure
			}
			return Null{}, nil
		}
	}
	return OctetString(append([]byte(nil), content...)), nil
}
