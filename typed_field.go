// typed_field.go - optional, type-safe access to Fields context.
//
// Overview
//
//	TypedKey provides an ergonomic layer for attaching and reading
//	strongly-typed values carried by Fields context layers. It complements
//	With/KV; both can be mixed freely.
//
// Usage
//
//	var KUserID = anyerr.Key[int64]("user_id")
//
//	err := KUserID.Set(loadErr, 42)
//	id, ok := KUserID.Get(err) // id=42, ok=true
//
// Caveats
//   - The dynamic type stored MUST be exactly T; no conversions are made.
//   - Outer layers win over inner ones (last write wins).
package anyerr

import (
	"fmt"
	"reflect"
)

// TypedKey names a context field holding values of type T.
type TypedKey[T any] struct {
	name string
}

// Key constructs a TypedKey[T] for name.
func Key[T any](name string) TypedKey[T] {
	return TypedKey[T]{name: name}
}

// Name returns the underlying field name.
func (k TypedKey[T]) Name() string { return k.name }

// Set attaches (name = val) to err as a new Fields context layer. A nil err
// stays nil.
func (k TypedKey[T]) Set(err error, val T) error {
	ae := fromError(err, 1)
	if ae == nil {
		return nil
	}
	return ae.Context(Fields{{Key: k.name, Val: val}})
}

// Get returns the value of the field from the outermost layer that sets it.
// It reports false if the field is absent or holds a different type.
func (k TypedKey[T]) Get(err error) (T, bool) {
	var zero T
	v, ok := FieldsOf(err).Get(k.name)
	if !ok {
		return zero, false
	}
	tv, ok := exactly[T](v)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get that panics when the field is missing or mistyped.
// Intended for tests and places where absence is a programming error.
func (k TypedKey[T]) MustGet(err error) T {
	var zero T
	if err == nil {
		panic(fmt.Errorf("anyerr.TypedKey[%T](%q): error is nil", zero, k.name))
	}
	v, ok := FieldsOf(err).Get(k.name)
	if !ok {
		panic(fmt.Errorf("anyerr.TypedKey[%T](%q): field missing", zero, k.name))
	}
	tv, ok := exactly[T](v)
	if !ok {
		panic(fmt.Errorf("anyerr.TypedKey[%T](%q): wrong dynamic type (%T)", zero, k.name, v))
	}
	return tv
}

// FieldsOf merges every Fields context layer found in err's chain, innermost
// first, so Get on the result honours last-write-wins across layers.
func FieldsOf(err error) Fields {
	var layers []Fields
	for cause := range NewChain(err).All() {
		c, ok := cause.(*contextError)
		if !ok {
			continue
		}
		if fs, ok := ownTake[Fields](c.ctx); ok {
			layers = append(layers, fs)
		}
	}
	var out Fields
	for i := len(layers) - 1; i >= 0; i-- {
		out = out.With(layers[i]...)
	}
	return out
}

// exactly asserts v to T only when v's dynamic type is T itself. Values that
// merely satisfy an interface T do not match.
func exactly[T any](v any) (T, bool) {
	var zero T
	if reflect.TypeOf(v) != reflect.TypeFor[T]() {
		return zero, false
	}
	return v.(T), true
}
