// vtable.go - per-type dispatch for stored payloads and foreign errors.
//
// Two tables work together:
//   - object is the method set every stored payload variant implements
//     (message, display-only, context layer, boxed error). The container
//     never inspects a payload's concrete type; it only calls these entries.
//   - vtable records, once per concrete error type, which optional protocols
//     the type speaks (Unwrap, legacy Cause, pkg/errors StackTrace, Backtrace).
//     Chain walking and trace inheritance dispatch through it instead of
//     re-probing every value.
package anyerr

import (
	"reflect"
	"sync"

	pkgerrors "github.com/pkg/errors"
)

// object is the dispatch surface of a stored payload.
type object interface {
	// display renders the payload's message.
	display() string
	// goString renders the payload's own debug (Go-syntax) form.
	goString() string
	// errorValue is the value that represents this layer in the cause chain
	// and in errors.Is/As traversal.
	errorValue() error
	// downcast returns the owned cell whose type is exactly t, if any.
	downcast(t reflect.Type) (own, bool)
	// backtrace returns a trace supplied by the payload itself, or nil.
	backtrace() *Backtrace
}

// Optional protocols probed on foreign errors.
type (
	unwrapper  interface{ Unwrap() error }
	causer     interface{ Cause() error }
	backtracer interface{ Backtrace() *Backtrace }

	// stackTracer is the github.com/pkg/errors trace protocol.
	stackTracer interface{ StackTrace() pkgerrors.StackTrace }
)

var (
	unwrapperType   = reflect.TypeFor[unwrapper]()
	causerType      = reflect.TypeFor[causer]()
	backtracerType  = reflect.TypeFor[backtracer]()
	stackTracerType = reflect.TypeFor[stackTracer]()
)

// vtable is the immutable capability record of one concrete type.
type vtable struct {
	typ        reflect.Type
	unwraps    bool
	causes     bool
	backtraces bool
	stacks     bool
}

// vtables caches one *vtable per reflect.Type for the process lifetime.
var vtables sync.Map

// nilVtable describes a nil error: no protocols at all.
var nilVtable = &vtable{}

// vtableOf returns the capability record for err's dynamic type.
func vtableOf(err error) *vtable {
	t := reflect.TypeOf(err)
	if t == nil {
		return nilVtable
	}
	if vt, ok := vtables.Load(t); ok {
		return vt.(*vtable)
	}
	vt := &vtable{
		typ:        t,
		unwraps:    t.Implements(unwrapperType),
		causes:     t.Implements(causerType),
		backtraces: t.Implements(backtracerType),
		stacks:     t.Implements(stackTracerType),
	}
	actual, _ := vtables.LoadOrStore(t, vt)
	return actual.(*vtable)
}

// rawSource returns err's direct cause. Unwrap() error wins over the legacy
// Cause() error; multi-unwrap errors have no linear cause.
func rawSource(err error) error {
	vt := vtableOf(err)
	switch {
	case vt.unwraps:
		return err.(unwrapper).Unwrap()
	case vt.causes:
		return err.(causer).Cause()
	default:
		return nil
	}
}

// sourceOf returns the next element of the cause chain after err. A nested
// container is replaced by its current error so that it does not show up
// twice (once as itself, once as its payload).
func sourceOf(err error) error {
	return flatten(rawSource(err))
}

// flatten replaces a container by the error value of its top layer.
func flatten(err error) error {
	if ae, ok := err.(*Error); ok {
		if ae == nil {
			return nil
		}
		return ae.obj.errorValue()
	}
	return err
}

// hasBacktrace reports whether err or any of its causes already carries a
// captured trace. Nothing is resolved; this is the cheap check made before
// deciding to capture.
func hasBacktrace(err error) bool {
	for cur := err; cur != nil; cur = rawSource(cur) {
		vt := vtableOf(cur)
		if vt.backtraces {
			if ae, ok := cur.(*Error); ok {
				if ae != nil && ae.bt != nil && ae.bt.Status() == BacktraceCaptured {
					return true
				}
				continue
			}
			if bt := cur.(backtracer).Backtrace(); bt != nil && bt.Status() == BacktraceCaptured {
				return true
			}
		}
		if vt.stacks && len(cur.(stackTracer).StackTrace()) > 0 {
			return true
		}
	}
	return false
}

// findBacktrace returns the first captured trace reachable from err,
// converting a pkg/errors stack on demand.
func findBacktrace(err error) *Backtrace {
	for cur := err; cur != nil; cur = rawSource(cur) {
		vt := vtableOf(cur)
		if vt.backtraces {
			if ae, ok := cur.(*Error); ok && ae == nil {
				continue
			}
			if bt := cur.(backtracer).Backtrace(); bt != nil && bt.Status() == BacktraceCaptured {
				return bt
			}
		}
		if vt.stacks {
			if st := cur.(stackTracer).StackTrace(); len(st) > 0 {
				return backtraceFromPkg(st)
			}
		}
	}
	return nil
}
