package anyerr_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	anyerr "github.com/xgx-io/xgx-anyerr"
)

func TestDowncast_RoundTrip(t *testing.T) {
	disableCapture(t)

	want := codeErr{Code: 11}
	got, rest := anyerr.Downcast[codeErr](anyerr.New(want))
	assert.Nil(t, rest)
	assert.Equal(t, want, got)

	p := &wrapErr{msg: "p"}
	gotPtr, rest := anyerr.Downcast[*wrapErr](anyerr.New(p))
	assert.Nil(t, rest)
	assert.Same(t, p, gotPtr)
}

func TestDowncast_WrongTypeReturnsContainer(t *testing.T) {
	disableCapture(t)

	e := anyerr.New(codeErr{Code: 1}).Context("ctx")
	before := e.Error()
	beforeChain := anyerr.ChainMessage(e)

	v, rest := anyerr.Downcast[*wrapErr](e)
	assert.Nil(t, v)
	require.Same(t, e, rest)
	assert.Equal(t, before, rest.Error())
	assert.Equal(t, beforeChain, anyerr.ChainMessage(rest))
}

func TestDowncast_ExactIdentityOnly(t *testing.T) {
	disableCapture(t)

	type myString string
	e := anyerr.New(codeErr{Code: 2})

	assert.False(t, anyerr.Is[error](e), "interface targets never match")
	assert.False(t, anyerr.Is[fmt.Stringer](e))
	assert.False(t, anyerr.Is[*codeErr](e), "pointer to stored type is a different type")

	m := anyerr.Msg(myString("x"))
	assert.True(t, anyerr.Is[myString](m))
	assert.False(t, anyerr.Is[string](m), "no conversion to the underlying type")
}

func TestDowncast_ThroughContextLayers(t *testing.T) {
	disableCapture(t)

	e := anyerr.New(codeErr{Code: 5}).
		Context(label{name: "mid"}).
		Context("high")

	c, ok := anyerr.DowncastRef[codeErr](e)
	require.True(t, ok)
	assert.Equal(t, 5, c.Code)

	l, ok := anyerr.DowncastRef[label](e)
	require.True(t, ok)
	assert.Equal(t, "mid", l.name)

	s, ok := anyerr.DowncastRef[string](e)
	require.True(t, ok)
	assert.Equal(t, "high", s)

	_, ok = anyerr.DowncastRef[int](e)
	assert.False(t, ok)
}

func TestDowncast_ContextMatchesOutermostFirst(t *testing.T) {
	disableCapture(t)

	e := chainOf("a", "b", "c")
	s, ok := anyerr.DowncastRef[string](e)
	require.True(t, ok)
	assert.Equal(t, "c", s)

	v, rest := anyerr.Downcast[string](e)
	assert.Nil(t, rest)
	assert.Equal(t, "c", v)
}

func TestDowncastMut_MutatesStoredValue(t *testing.T) {
	disableCapture(t)

	e := anyerr.New(codeErr{Code: 1}).Context("ctx").Context("more")

	p, ok := anyerr.DowncastMut[codeErr](e)
	require.True(t, ok)
	p.Code = 42

	again, ok := anyerr.DowncastRef[codeErr](e)
	require.True(t, ok)
	assert.Equal(t, 42, again.Code)
	assert.Equal(t, "more: ctx: code 42", anyerr.ChainMessage(e))

	var target codeErr
	require.True(t, errors.As(e, &target))
	assert.Equal(t, 42, target.Code)

	_, ok = anyerr.DowncastMut[io.Reader](e)
	assert.False(t, ok)
}

func TestDowncastMut_ContextValue(t *testing.T) {
	disableCapture(t)

	e := anyerr.Msg("low").Context("high")
	p, ok := anyerr.DowncastMut[string](e)
	require.True(t, ok)
	*p = "rewritten"
	assert.Equal(t, "rewritten", e.Error())
}

func TestDowncast_NilContainer(t *testing.T) {
	var e *anyerr.Error
	v, rest := anyerr.Downcast[string](e)
	assert.Empty(t, v)
	assert.Nil(t, rest, "nil has nothing to propagate")

	assert.False(t, anyerr.Is[string](e))
	_, ok := anyerr.DowncastRef[string](e)
	assert.False(t, ok)
	_, ok = anyerr.DowncastMut[string](e)
	assert.False(t, ok)
}

func TestDowncast_BoxedDynamicType(t *testing.T) {
	disableCapture(t)

	var err error = &wrapErr{msg: "boxed"}
	e := anyerr.From(err)
	w, ok := anyerr.DowncastRef[*wrapErr](e)
	require.True(t, ok)
	assert.Equal(t, "boxed", w.msg)
}
