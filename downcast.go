// downcast.go - recovering stored values by exact type identity.
//
// A stored value matches T only when its dynamic type is exactly T:
//   - no interface satisfaction (T = error or fmt.Stringer never matches),
//   - no conversion between named and underlying types.
//
// Context layers match their own context value first and then search the
// container they wrap, so every value attached with Context is reachable.
package anyerr

import "reflect"

// Downcast extracts the stored value of type T. On success it returns the
// value and a nil container. On mismatch it returns T's zero value and the
// original container, unchanged, so the caller can keep propagating it.
//
// A nil container has nothing to extract and nothing to propagate: it yields
// T's zero value and nil, which a check of the returned container alone
// cannot tell apart from success. Check e for nil first, or use DowncastRef,
// which reports false for a nil container.
func Downcast[T any](e *Error) (T, *Error) {
	v, ok := DowncastRef[T](e)
	if !ok {
		return v, e
	}
	return v, nil
}

// DowncastRef returns a copy of the stored value of type T, if any.
func DowncastRef[T any](e *Error) (T, bool) {
	if e == nil {
		var zero T
		return zero, false
	}
	o, ok := e.obj.downcast(reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return ownTake[T](o)
}

// DowncastMut returns a pointer to the stored value of type T. Writes
// through it are visible to every later read of the container. The caller is
// responsible for exclusive access while mutating.
func DowncastMut[T any](e *Error) (*T, bool) {
	if e == nil {
		return nil, false
	}
	o, ok := e.obj.downcast(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	return ownPtr[T](o)
}

// Is reports whether the container stores a value of exactly type T.
func Is[T any](e *Error) bool {
	if e == nil {
		return false
	}
	_, ok := e.obj.downcast(reflect.TypeFor[T]())
	return ok
}
