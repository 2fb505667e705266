// construct.go - the four construction paths of a container.
//
//	+--------------------------+-----------------------------+--------------------------+
//	| Constructor              | Stored payload              | Captures a trace?        |
//	+--------------------------+-----------------------------+--------------------------+
//	| New(e) / From(err)       | the error value             | unless a cause has one   |
//	| Msg(m)                   | m (any displayable value)   | always (if enabled)      |
//	| Errorf(format, args...)  | formatted string / %w error | always / unless inherited|
//	| FromDisplay(s)           | s, debug form synthesised   | always (if enabled)      |
//	+--------------------------+-----------------------------+--------------------------+
//
// Notes:
//   - A container passed to New/From/Msg is returned as-is: no extra layer.
//   - nil errors produce a nil container.
//   - Capture obeys the active Capturer (ANYERR_BACKTRACE by default).
package anyerr

import (
	"fmt"
	"reflect"
)

// New builds a container from a concrete error value. If err (or one of its
// causes) already carries a captured trace, no new trace is captured.
func New[E error](err E) *Error {
	return fromError(err, 1)
}

// From adapts an already type-erased error. Its cause chain is preserved as
// is; an *Error is returned unchanged.
func From(err error) *Error {
	return fromError(err, 1)
}

// Msg builds a container from an ad-hoc message value rendered with %v.
// Error values are routed through From so their causes stay reachable.
func Msg(m any) *Error {
	if err, ok := m.(error); ok {
		return fromError(err, 1)
	}
	return newRecord(&messageError{msg: newOwn(m)}, nil, 1)
}

// Errorf formats a message with fmt semantics ("%%" renders as "%"). Use Msg
// for literal text. If the arguments are wrapped with %w, the result keeps
// them as causes.
func Errorf(format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	if wraps(err) {
		return fromError(err, 1)
	}
	return newRecord(&messageError{msg: newOwn(err.Error())}, nil, 1)
}

// FromDisplay builds a container from a value that only renders as text.
// Its %#v form is the quoted String() output.
func FromDisplay(m fmt.Stringer) *Error {
	return newRecord(&displayError{msg: newOwn(m)}, nil, 1)
}

// fromError is the shared body of New and From. skip counts the frames
// above fromError's caller that belong to this package.
func fromError(err error, skip int) *Error {
	if isNilError(err) {
		return nil
	}
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return newRecord(&boxedError{err: newOwn(err)}, err, skip+1)
}

// newRecord allocates the container record. skip is the number of frames
// above newRecord that must not appear in a captured trace.
func newRecord(obj object, cause error, skip int) *Error {
	e := &Error{obj: obj}
	if cause == nil || !hasBacktrace(cause) {
		// +1 to skip newRecord itself.
		e.bt = capture(skip + 1)
	}
	return e
}

// wraps reports whether err exposes any cause (single or multi).
func wraps(err error) bool {
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return u.Unwrap() != nil
	case interface{ Unwrap() []error }:
		return len(u.Unwrap()) > 0
	default:
		return false
	}
}

// isNilError reports an untyped nil or a nil pointer stored in err.
func isNilError(err error) bool {
	if err == nil {
		return true
	}
	rv := reflect.ValueOf(err)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
