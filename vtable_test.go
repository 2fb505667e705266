// vtable_test.go - capability probing, source resolution and trace lookup.
package anyerr

import (
	"errors"
	"fmt"
	"io"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

type vtUnwrapCause struct{ u, c error }

func (e vtUnwrapCause) Error() string { return "both" }
func (e vtUnwrapCause) Unwrap() error { return e.u }
func (e vtUnwrapCause) Cause() error  { return e.c }

type vtCauseOnly struct{ c error }

func (e vtCauseOnly) Error() string { return "cause only" }
func (e vtCauseOnly) Cause() error  { return e.c }

type vtTraced struct{ bt *Backtrace }

func (e vtTraced) Error() string          { return "traced" }
func (e vtTraced) Backtrace() *Backtrace { return e.bt }

func TestVtableOf_Cached(t *testing.T) {
	t.Parallel()

	a := vtableOf(vtCauseOnly{})
	b := vtableOf(vtCauseOnly{c: io.EOF})
	if a != b {
		t.Fatalf("vtableOf should return one record per type")
	}
	if !a.causes || a.unwraps || a.stacks || a.backtraces {
		t.Fatalf("vtCauseOnly vtable = %+v", *a)
	}
	if vtableOf(nil) != nilVtable {
		t.Fatalf("nil error should use nilVtable")
	}
	if !vtableOf(pkgerrors.New("x")).stacks {
		t.Fatalf("pkg/errors values speak StackTrace")
	}
}

func TestRawSource_UnwrapWinsOverCause(t *testing.T) {
	t.Parallel()

	e := vtUnwrapCause{u: io.EOF, c: io.ErrUnexpectedEOF}
	if got := rawSource(e); got != io.EOF {
		t.Fatalf("rawSource = %v, want EOF", got)
	}
	if got := rawSource(vtCauseOnly{c: io.ErrClosedPipe}); got != io.ErrClosedPipe {
		t.Fatalf("rawSource(cause only) = %v", got)
	}
	if got := rawSource(errors.Join(io.EOF, io.ErrClosedPipe)); got != nil {
		t.Fatalf("multi-unwrap has no linear source, got %v", got)
	}
	if got := rawSource(fmt.Errorf("x: %w", io.EOF)); got != io.EOF {
		t.Fatalf("rawSource(%%w) = %v", got)
	}
}

func TestSourceOf_FlattensContainer(t *testing.T) {
	t.Parallel()

	inner := &Error{obj: &messageError{msg: newOwn("inner")}}
	outer := vtCauseOnly{c: inner}
	got := sourceOf(outer)
	if _, ok := got.(*messageError); !ok {
		t.Fatalf("sourceOf should yield the container's payload, got %T", got)
	}
	var nilErr *Error
	if flatten(nilErr) != nil {
		t.Fatalf("flatten(nil *Error) should be nil")
	}
}

func TestHasBacktrace(t *testing.T) {
	t.Parallel()

	captured := &Backtrace{status: BacktraceCaptured, frames: Stack{{Function: "f"}}}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"plain", io.EOF, false},
		{"pkg stack", pkgerrors.New("x"), true},
		{"pkg stack behind cause", vtCauseOnly{c: pkgerrors.New("x")}, true},
		{"backtracer captured", vtTraced{bt: captured}, true},
		{"backtracer disabled", vtTraced{bt: disabledBacktrace}, false},
		{"backtracer nil", vtTraced{}, false},
		{"container captured", &Error{obj: &messageError{msg: newOwn("m")}, bt: captured}, true},
		{"container disabled", &Error{obj: &messageError{msg: newOwn("m")}, bt: disabledBacktrace}, false},
		{"wrapped container", fmt.Errorf("w: %w", &Error{obj: &messageError{msg: newOwn("m")}, bt: captured}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasBacktrace(tt.err); got != tt.want {
				t.Fatalf("hasBacktrace = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindBacktrace(t *testing.T) {
	t.Parallel()

	captured := &Backtrace{status: BacktraceCaptured, frames: Stack{{Function: "f"}}}
	if got := findBacktrace(vtCauseOnly{c: vtTraced{bt: captured}}); got != captured {
		t.Fatalf("findBacktrace should return the backtracer's trace")
	}
	if got := findBacktrace(io.EOF); got != nil {
		t.Fatalf("findBacktrace(plain) = %v", got)
	}
	if got := findBacktrace(pkgerrors.Wrap(io.EOF, "ctx")); got.Status() != BacktraceCaptured {
		t.Fatalf("pkg/errors stack should convert to a captured trace")
	}
}
