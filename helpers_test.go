package anyerr_test

import (
	"fmt"
	"runtime"
	"testing"

	anyerr "github.com/xgx-io/xgx-anyerr"
)

// staticCapturer hands out the same trace for every capture.
type staticCapturer struct {
	bt *anyerr.Backtrace
}

func (s staticCapturer) Capture(int) *anyerr.Backtrace { return s.bt }

// useCapturer installs c for the duration of the test.
func useCapturer(t *testing.T, c anyerr.Capturer) {
	t.Helper()
	t.Cleanup(anyerr.SetCapturer(c))
}

func disableCapture(t *testing.T) {
	t.Helper()
	useCapturer(t, staticCapturer{bt: anyerr.DisabledBacktrace()})
}

// hereBacktrace returns a captured trace starting at its caller.
func hereBacktrace() *anyerr.Backtrace {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	return anyerr.NewBacktrace(pcs[:n])
}

// codeErr is a value-typed error with comparable state.
type codeErr struct {
	Code int
}

func (e codeErr) Error() string { return fmt.Sprintf("code %d", e.Code) }

// wrapErr is a pointer-typed error with a cause.
type wrapErr struct {
	msg   string
	cause error
}

func (e *wrapErr) Error() string { return e.msg }
func (e *wrapErr) Unwrap() error { return e.cause }

// legacyErr only speaks the pre-1.13 Cause protocol.
type legacyErr struct {
	msg   string
	cause error
}

func (e legacyErr) Error() string { return e.msg }
func (e legacyErr) Cause() error  { return e.cause }

// label is a display-only value.
type label struct {
	name string
}

func (l label) String() string { return "label " + l.name }

// chainOf builds Msg(msgs[0]).Context(msgs[1])...
func chainOf(msgs ...string) *anyerr.Error {
	e := anyerr.Msg(msgs[0])
	for _, m := range msgs[1:] {
		e = e.Context(m)
	}
	return e
}
