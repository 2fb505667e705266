// Package anyerr provides an opaque, type-erased error container.
//
// An *Error owns exactly one record holding the stored payload (a concrete
// error, a message, a display-only value or a context layer) and, at most
// once per chain, a captured Backtrace. It is built to be returned up call
// chains and inspected at the top:
//   - Error() is the current (outermost) message.
//   - Chain() walks every cause, newest first.
//   - Downcast/DowncastRef/DowncastMut recover a stored value by exact type.
//   - Backtrace() returns the trace captured when the chain was created.
//
// Design tenets:
//   - Interop-first: *Error implements Unwrap() error, so errors.Is/As see
//     the whole chain including every context value's layer.
//   - Non-mutating composition: Context returns a NEW container that owns
//     the previous one; the receiver is never changed.
//   - Exact identity: downcasting compares reflect.Type values; interface
//     targets and convertible types never match.
package anyerr

// Error is the type-erased error container. Callers hold *Error, a single
// machine word. The zero value is not usable; construct with New, Msg,
// Errorf, FromDisplay or From.
type Error struct {
	obj object
	bt  *Backtrace // nil when a cause already supplies a trace
}

// Error returns the current (outermost) message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.obj.display()
}

// Unwrap returns the error value of the outermost layer so that stdlib
// traversal (errors.Is/As) visits the stored payload and all of its causes.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.obj.errorValue()
}

// Backtrace returns the trace captured for this chain. If construction did
// not capture because a cause already carried a trace, that trace is
// returned instead. The result is never nil; inspect Status().
func (e *Error) Backtrace() *Backtrace {
	if e == nil {
		return disabledBacktrace
	}
	if e.bt != nil {
		return e.bt
	}
	if bt := e.obj.backtrace(); bt != nil {
		return bt
	}
	return unsupportedBacktrace
}

// RootCause returns the innermost error of the chain. For a container built
// from a message with no underlying error this is the message itself.
func (e *Error) RootCause() error {
	if e == nil {
		return nil
	}
	var root error
	for cause := range e.Chain().All() {
		root = cause
	}
	return root
}

// Compile-time conformance guards.
var (
	_ error      = (*Error)(nil)
	_ unwrapper  = (*Error)(nil)
	_ backtracer = (*Error)(nil)
)
