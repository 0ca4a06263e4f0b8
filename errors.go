package ber

import (
	"errors"
	"fmt"

	"github.com/dirber/ber/internal/vlq"
)

// Sentinel errors distinguishing the categories of failure this package can
// report. Callers that need to branch on category (rather than just log or
// surface the error) can test against these with [errors.Is]; most callers
// should just treat a non-nil error as "this Encoder/Decoder is now dead
// until Start is called again," per the package's single-error-kind design.
var (
	// ErrMisuse indicates an operation was called out of sequence: before
	// Start, Leave with nothing open, Output with an open container or no
	// value written, Read of a constructed value, or Enter of a primitive
	// one.
	ErrMisuse = errors.New("ber: misuse")

	// ErrTruncated indicates the input ended before a complete tag,
	// length, or content could be parsed.
	ErrTruncated = errors.New("ber: truncated input")

	// ErrNonMinimal indicates a non-minimally encoded integer (a redundant
	// leading 0x00 or 0xFF sign-extension byte), or a long-form tag number
	// whose first varint octet is 0x80.
	ErrNonMinimal = errors.New("ber: integer is not minimally encoded")

	// ErrUnsupported indicates a well-formed but unsupported encoding: the
	// indefinite-length form, a length field wider than 126 bytes, or
	// nesting deeper than DefaultMaxDepth.
	ErrUnsupported = errors.New("ber: unsupported encoding")

	// ErrStructure indicates a structural violation: a child TLV that
	// overruns its parent's declared length, or Leave called before all
	// of a container's children have been consumed.
	ErrStructure = errors.New("ber: malformed structure")
)

// CodecError is the single error type returned by every operation in this
// package, as required by callers that discriminate failures by context
// (which method failed, at what offset) rather than by a large error-type
// hierarchy.
type CodecError struct {
	// Op names the method that failed, e.g. "write", "enter", "leave",
	// "output", "peek", "read".
	Op string

	// Reason is a short, human-readable description of the failure.
	Reason string

	// Offset is the byte offset into the buffer being built (Encoder) or
	// consumed (Decoder) at the point of failure, or -1 if no offset is
	// meaningful (e.g. a misuse error raised before Start).
	Offset int

	// Err is the underlying sentinel identifying the failure category.
	Err error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("ber: %s: %s (offset %d)", e.Op, e.Reason, e.Offset)
	}
	return fmt.Sprintf("ber: %s: %s", e.Op, e.Reason)
}

// Unwrap returns the underlying sentinel error, so that
// errors.Is(err, ber.ErrTruncated) and similar checks work against a
// *CodecError.
func (e *CodecError) Unwrap() error { return e.Err }

// codecErr constructs a *CodecError for operation op, wrapping sentinel
// err with a human-readable reason, at the given offset (-1 if not
// meaningful).
func codecErr(op string, err error, offset int, reason string) *CodecError {
	return &CodecError{Op: op, Reason: reason, Offset: offset, Err: err}
}

// internal names for the exported sentinels, used before an Op/Offset is
// known. They hold the same error values as the exported sentinels, so
// errors.Is matches either name.
var (
	errMisuse      = ErrMisuse
	errTruncated   = ErrTruncated
	errNonMinimal  = ErrNonMinimal
	errUnsupported = ErrUnsupported
	errStructure   = ErrStructure
)

// reasonFor returns a short human-readable reason for a sentinel error, for
// use in a *CodecError's message.
func reasonFor(err error) string {
	switch {
	case errors.Is(err, ErrTruncated):
		return "truncated input"
	case errors.Is(err, ErrNonMinimal):
		return "integer is not minimally encoded"
	case errors.Is(err, ErrUnsupported):
		return "unsupported encoding"
	case errors.Is(err, ErrStructure):
		return "malformed structure"
	case errors.Is(err, ErrMisuse):
		return "misuse"
	default:
		return err.Error()
	}
}

// wrapVLQError translates an error from the internal/vlq package into the
// sentinel category it corresponds to here.
func wrapVLQError(err error) error {
	switch {
	case errors.Is(err, vlq.ErrTruncated):
		return errTruncated
	case errors.Is(err, vlq.ErrNotMinimal):
		return errNonMinimal
	case errors.Is(err, vlq.ErrOverflow):
		return errUnsupported
	default:
		return err
	}
}
