// context.go - context layers and the structured Fields context value.
//
// Context wraps a container in a new layer whose message is the context
// value's %v rendering and whose cause is the wrapped container's current
// error. Layers never capture a trace: the wrapped container already owns
// the chain's trace.
//
// Fields is an ordered key/value context value:
//   - Internal representation: append-only []Field (deterministic order).
//   - Builders are non-mutating: return NEW slices (no aliasing).
//   - Rendered as space-separated key=value pairs.
package anyerr

import (
	"fmt"
	"strings"
)

// Context returns a NEW container whose top layer is c and whose cause is the
// receiver. The receiver is not modified. A nil receiver yields nil.
func (e *Error) Context(c any) *Error {
	if e == nil {
		return nil
	}
	return &Error{obj: &contextError{ctx: newOwn(c), next: e}}
}

// Context attaches c to the error branch of a fallible call. A nil err is
// returned as nil (success branch unchanged); a container is wrapped
// directly; any other error is first adapted with From.
func Context(err error, c any) error {
	ae := fromError(err, 1)
	if ae == nil {
		return nil
	}
	return ae.Context(c)
}

// WithContext is Context with a lazily computed value: f runs only when err
// is non-nil, so success paths pay no formatting cost.
func WithContext[C any](err error, f func() C) error {
	ae := fromError(err, 1)
	if ae == nil {
		return nil
	}
	return ae.Context(f())
}

// Field represents a single contextual key-value pair.
// Keys SHOULD be snake_case for consistency, but this is not enforced.
type Field struct {
	Key string
	Val any
}

// Fields is an ordered set of key-value pairs usable as a context value.
// Treat it as append-only; never modify elements in place once published.
type Fields []Field

// KV parses a variadic list of key-value arguments into Fields.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - Keys MUST be strings; a non-string key drops the ENTIRE pair (the key
//     and its following value) so later pairs stay aligned.
//   - A trailing key with no value becomes (key, nil).
func KV(kv ...any) Fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(Fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// With returns NEW Fields with add appended. It always allocates a fresh
// backing array so neither input is aliased.
func (fs Fields) With(add ...Field) Fields {
	if len(add) == 0 && len(fs) == 0 {
		return nil
	}
	out := make(Fields, len(fs)+len(add))
	copy(out, fs)
	copy(out[len(fs):], add)
	return out
}

// Get returns the value of the LAST field named key (last write wins).
func (fs Fields) Get(key string) (any, bool) {
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i].Key == key {
			return fs[i].Val, true
		}
	}
	return nil, false
}

// Map returns a NEW map of the fields; later duplicate keys win.
func (fs Fields) Map() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}

// String renders the fields as "k1=v1 k2=v2". Empty keys are skipped.
func (fs Fields) String() string {
	var sb strings.Builder
	for _, f := range fs {
		if f.Key == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(&sb, "%s=%v", f.Key, f.Val)
	}
	return sb.String()
}
