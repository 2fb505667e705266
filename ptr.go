// ptr.go - owning heap slot for type-erased payloads.
//
// An own holds a pointer to one heap cell whose static type has been erased.
// The cell's type is recovered only through an exact reflect.Type comparison,
// so a cast can never reinterpret the cell as an unrelated type:
//   - newOwn   allocates the cell and takes ownership of v.
//   - get      borrows the current value (read-only view).
//   - ownPtr   casts the cell to *T when T is exactly the stored type.
//   - ownTake  reclaims the stored value as a T.
package anyerr

import "reflect"

// anyType is the element type used for cells created from a nil interface.
var anyType = reflect.TypeFor[any]()

// own is the owning handle. The zero value owns nothing and matches no type.
type own struct {
	ptr reflect.Value // Kind() == reflect.Pointer when valid
}

func newOwn(v any) own {
	t := reflect.TypeOf(v)
	if t == nil {
		return own{ptr: reflect.New(anyType)}
	}
	p := reflect.New(t)
	p.Elem().Set(reflect.ValueOf(v))
	return own{ptr: p}
}

func (o own) valid() bool { return o.ptr.IsValid() }

// typ returns the exact type of the stored value.
func (o own) typ() reflect.Type {
	if !o.valid() {
		return nil
	}
	return o.ptr.Type().Elem()
}

// get borrows the stored value.
func (o own) get() any {
	if !o.valid() {
		return nil
	}
	return o.ptr.Elem().Interface()
}

// ownPtr casts the cell to *T. It fails unless T is exactly the stored type;
// interface targets only match cells created from a nil interface.
func ownPtr[T any](o own) (*T, bool) {
	if !o.valid() || o.typ() != reflect.TypeFor[T]() {
		return nil, false
	}
	p, ok := o.ptr.Interface().(*T)
	return p, ok
}

// ownTake reclaims the stored value as a T.
func ownTake[T any](o own) (T, bool) {
	p, ok := ownPtr[T](o)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}
