package bwt

import "fmt"

// Kind identifies the category of error an Index operation can raise.
type Kind int

const (
	// InvalidInput means S or a pattern P was too short, empty, or
	// contained a symbol outside {0,1}, or that a snapshot file was too
	// short to hold its digest header.
	InvalidInput Kind = iota
	// IndexOutOfRange means rank or locate was called with a row index
	// outside its documented domain, after clamping rules were applied.
	IndexOutOfRange
	// InternalInvariant means a consistency check failed. This indicates
	// a bug in this package, not a caller error.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every exported operation in this
// package. Callers that need to branch on the failure category should
// check Kind rather than matching on the message text.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("bwt: %s: %s", e.Kind, e.Msg)
}

func invalidInputf(format string, args ...any) *Error {
	return &Error{Kind: InvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func indexOutOfRangef(format string, args ...any) *Error {
	return &Error{Kind: IndexOutOfRange, Msg: fmt.Sprintf(format, args...)}
}

func internalInvariantf(format string, args ...any) *Error {
	return &Error{Kind: InternalInvariant, Msg: fmt.Sprintf(format, args...)}
}

// recoverAsInternalInvariant turns a panic raised anywhere during the call
// into an InternalInvariant error rather than crashing the caller. Exported
// methods that rely on internal slice-bounds panics as a last line of
// defense defer this first.
func recoverAsInternalInvariant(operation string, err *error) {
	if r := recover(); r != nil {
		*err = internalInvariantf("%s: %v", operation, r)
	}
}
