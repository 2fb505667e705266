// wrap.go - stdlib-friendly wrappers that operate on arbitrary errors.
//
// Each helper follows the same rules as Context:
//   - nil → nil (the success branch passes through untouched)
//   - *Error → a new context layer on top of it
//   - other error → adapted with From (capturing a trace unless it already
//     carries one), then layered
package anyerr

import "fmt"

// Wrap adds a short contextual message to any error.
func Wrap(err error, msg string) error {
	ae := fromError(err, 1)
	if ae == nil {
		return nil
	}
	return ae.Context(msg)
}

// Wrapf is Wrap with a formatted message. Formatting happens only when err
// is non-nil.
func Wrapf(err error, format string, args ...any) error {
	ae := fromError(err, 1)
	if ae == nil {
		return nil
	}
	return ae.Context(fmt.Sprintf(format, args...))
}

// With attaches structured key-values (see KV) to any error as a context
// layer rendered "k1=v1 k2=v2".
func With(err error, kv ...any) error {
	ae := fromError(err, 1)
	if ae == nil {
		return nil
	}
	return ae.Context(KV(kv...))
}

// forcedCapturer ignores the environment gate.
var forcedCapturer = RuntimeCapturer(true)

// WithStack adapts err like From but always captures a trace, ignoring the
// environment gate, unless the chain already carries a captured one. A
// container without a captured trace is copied (copy-on-write) with the new
// trace; the receiver is not modified.
func WithStack(err error) *Error {
	if isNilError(err) {
		return nil
	}
	if hasBacktrace(err) {
		return fromError(err, 1)
	}
	// +1 to skip WithStack itself.
	bt := forcedCapturer.Capture(1)
	if ae, ok := err.(*Error); ok {
		return &Error{obj: ae.obj, bt: bt}
	}
	return &Error{obj: &boxedError{err: newOwn(err)}, bt: bt}
}
