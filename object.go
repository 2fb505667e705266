// object.go - the payload variants stored inside a container.
//
//   - messageError  any displayable value (Msg, Errorf without %w)
//   - displayError  a fmt.Stringer whose debug form is synthesised
//   - contextError  a context value layered over another container
//   - boxedError    an error value (New, From)
package anyerr

import (
	"fmt"
	"reflect"
	"strconv"
)

// messageError stores an ad-hoc message value.
type messageError struct {
	msg own
}

func (m *messageError) Error() string     { return fmt.Sprint(m.msg.get()) }
func (m *messageError) GoString() string  { return m.goString() }
func (m *messageError) display() string   { return m.Error() }
func (m *messageError) goString() string  { return fmt.Sprintf("%#v", m.msg.get()) }
func (m *messageError) errorValue() error { return m }

func (m *messageError) downcast(t reflect.Type) (own, bool) {
	if m.msg.typ() == t {
		return m.msg, true
	}
	return own{}, false
}

func (m *messageError) backtrace() *Backtrace { return nil }

// displayError stores a value that can only render itself as text.
type displayError struct {
	msg own
}

func (d *displayError) Error() string {
	s, ok := d.msg.get().(fmt.Stringer)
	if !ok {
		return fmt.Sprint(d.msg.get())
	}
	return s.String()
}

func (d *displayError) GoString() string  { return d.goString() }
func (d *displayError) display() string   { return d.Error() }
func (d *displayError) goString() string  { return strconv.Quote(d.Error()) }
func (d *displayError) errorValue() error { return d }

func (d *displayError) downcast(t reflect.Type) (own, bool) {
	if d.msg.typ() == t {
		return d.msg, true
	}
	return own{}, false
}

func (d *displayError) backtrace() *Backtrace { return nil }

// contextError layers a display-only context value over a container. Its
// cause is exactly the wrapped container's current error.
type contextError struct {
	ctx  own
	next *Error
}

func (c *contextError) Error() string     { return fmt.Sprint(c.ctx.get()) }
func (c *contextError) Unwrap() error     { return c.next.obj.errorValue() }
func (c *contextError) GoString() string  { return c.goString() }
func (c *contextError) display() string   { return c.Error() }
func (c *contextError) errorValue() error { return c }

func (c *contextError) goString() string {
	return fmt.Sprintf("anyerr.Context{Context: %#v, Source: %s}", c.ctx.get(), c.next.obj.goString())
}

// downcast matches the context value first, then searches the wrapped
// container.
func (c *contextError) downcast(t reflect.Type) (own, bool) {
	if c.ctx.typ() == t {
		return c.ctx, true
	}
	return c.next.obj.downcast(t)
}

// Backtrace exposes the wrapped container's trace; context layers never
// capture their own.
func (c *contextError) Backtrace() *Backtrace { return c.next.Backtrace() }
func (c *contextError) backtrace() *Backtrace { return c.next.Backtrace() }

// boxedError stores an error value, whether its static type was known at
// construction (New) or already erased (From).
type boxedError struct {
	err own
}

func (b *boxedError) errorValue() error {
	err, _ := b.err.get().(error)
	return err
}

func (b *boxedError) display() string {
	err := b.errorValue()
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}

func (b *boxedError) goString() string { return fmt.Sprintf("%#v", b.err.get()) }

func (b *boxedError) downcast(t reflect.Type) (own, bool) {
	if b.err.typ() == t {
		return b.err, true
	}
	return own{}, false
}

func (b *boxedError) backtrace() *Backtrace { return findBacktrace(b.errorValue()) }

var (
	_ object = (*messageError)(nil)
	_ object = (*displayError)(nil)
	_ object = (*contextError)(nil)
	_ object = (*boxedError)(nil)
)
