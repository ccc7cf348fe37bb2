package core

import (
	"golang.org/x/xerrors"
)

// Kind enumerates the fatal error taxonomy from spec.md §7: every
// condition that aborts an in-flight tokenise or parse has exactly one
// Kind. Kind is comparable, so callers can branch on it directly or
// use errors.As to recover a *Error and inspect its Kind.
type Kind int

const (
	// KindUnknown is never constructed by this package; it is the
	// zero value of Kind, reserved so an un-set Kind is visibly wrong
	// rather than aliasing a real one.
	KindUnknown Kind = iota

	// Lexical errors (tokeniser).
	KindInvalidByte        // LexError.InvalidByte
	KindUnterminatedString // LexError.UnterminatedString
	KindBadEscape          // LexError.BadEscape
	KindBadStreamKeyword   // LexError.BadStreamKeyword
	KindBadNumber          // LexError.BadNumber

	// Parse errors (object parser).
	KindContextMismatch         // ParseError.ContextMismatch
	KindStackUnderflow          // ParseError.StackUnderflow
	KindMissingStreamDictionary // ParseError.MissingStreamDictionary
	KindUnexpectedToken         // ParseError.UnexpectedToken
	KindIdentifierOverflow      // ParseError.IdentifierOverflow
	KindTypeMismatch            // ParseError.TypeMismatch
)

// String names the error kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInvalidByte:
		return "LexError.InvalidByte"
	case KindUnterminatedString:
		return "LexError.UnterminatedString"
	case KindBadEscape:
		return "LexError.BadEscape"
	case KindBadStreamKeyword:
		return "LexError.BadStreamKeyword"
	case KindBadNumber:
		return "LexError.BadNumber"
	case KindContextMismatch:
		return "ParseError.ContextMismatch"
	case KindStackUnderflow:
		return "ParseError.StackUnderflow"
	case KindMissingStreamDictionary:
		return "ParseError.MissingStreamDictionary"
	case KindUnexpectedToken:
		return "ParseError.UnexpectedToken"
	case KindIdentifierOverflow:
		return "ParseError.IdentifierOverflow"
	case KindTypeMismatch:
		return "ParseError.TypeMismatch"
	default:
		return "Error.Unknown"
	}
}

// Error is the single error type raised by this package's tokeniser
// and object parser. Offset is the byte index of the offending
// position when one is known, or -1 otherwise. Grounded on the
// teacher's practice of a single, package-level error-construction
// helper (e.g. core/security's errors.Errorf, internal/jbig2's
// package-level Errorf) generalized into one typed error covering the
// taxonomy spec.md §7 enumerates explicitly.
type Error struct {
	Kind    Kind
	Offset  int64
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Offset >= 0 {
		if e.cause != nil {
			return xerrors.Errorf("%s at offset %d: %s: %w", e.Kind, e.Offset, e.Message, e.cause).Error()
		}
		return xerrors.Errorf("%s at offset %d: %s", e.Kind, e.Offset, e.Message).Error()
	}
	if e.cause != nil {
		return xerrors.Errorf("%s: %s: %w", e.Kind, e.Message, e.cause).Error()
	}
	return xerrors.Errorf("%s: %s", e.Kind, e.Message).Error()
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// newError builds a *Error with no offset information.
func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Offset: -1, Message: message}
}

// newErrorAt builds a *Error anchored to a byte offset.
func newErrorAt(kind Kind, offset int64, message string) *Error {
	return &Error{Kind: kind, Offset: offset, Message: message}
}

// newErrorAtCause builds a *Error anchored to a byte offset, wrapping
// an underlying cause (e.g. a malformed strconv.ParseInt failure).
func newErrorAtCause(kind Kind, offset int64, message string, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Message: message, cause: cause}
}
