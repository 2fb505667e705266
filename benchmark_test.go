package anyerr

import (
	"errors"
	"fmt"
	"testing"
)

func benchNoCapture(b *testing.B) {
	b.Helper()
	b.Cleanup(SetCapturer(RuntimeCapturer(false)))
}

func BenchmarkMsg(b *testing.B) {
	benchNoCapture(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Msg("boom")
	}
}

func BenchmarkNew(b *testing.B) {
	benchNoCapture(b)
	cause := errors.New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = New(cause)
	}
}

func BenchmarkContext(b *testing.B) {
	benchNoCapture(b)
	base := Msg("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.Context("step")
	}
}

func BenchmarkWithStack(b *testing.B) {
	base := errors.New("boom")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WithStack(base)
	}
}

type benchErr struct{ code int }

func (e benchErr) Error() string { return "bench " + fmt.Sprint(e.code) }

func buildDeepChain(depth int) *Error {
	e := New(benchErr{code: depth})
	for i := 0; i < depth; i++ {
		e = e.Context(fmt.Sprintf("layer %d", i))
	}
	return e
}

func BenchmarkChainWalk(b *testing.B) {
	benchNoCapture(b)
	e := buildDeepChain(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range e.Chain().All() {
		}
	}
}

func BenchmarkChainRev(b *testing.B) {
	benchNoCapture(b)
	e := buildDeepChain(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range e.Chain().Rev().All() {
		}
	}
}

func BenchmarkDowncastDeep(b *testing.B) {
	benchNoCapture(b)
	e := buildDeepChain(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DowncastRef[benchErr](e)
	}
}

func BenchmarkFormatReport(b *testing.B) {
	benchNoCapture(b)
	e := buildDeepChain(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%+v", e)
	}
}
